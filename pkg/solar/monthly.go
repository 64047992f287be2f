package solar

import (
	"math"
	"time"
)

// referenceYear anchors the mid-month dates used for monthly estimates.
const referenceYear = 2024

// MonthlyProduction estimates production in kWh for each calendar month, from
// January to December. Each month uses the sun altitude at noon on the 15th and
// a seasonal factor peaking in July; months never go below zero.
func MonthlyProduction(systemSize, efficiency, latitude, orientation, pitch float64) [12]float64 {
	var months [12]float64
	latitudeFactor := 1 - math.Abs(latitude)/90*0.3
	orientationFactor := math.Cos(radians(orientation))
	pitchFactor := math.Cos(radians(90 - pitch))

	for m := range months {
		date := time.Date(referenceYear, time.Month(m+1), 15, 12, 0, 0, 0, time.UTC)
		pos := SolarPosition(latitude, date)

		seasonalFactor := 1 + 0.2*math.Cos(radians(float64(m-6)*30))

		production := systemSize * efficiency / 100 *
			30 *
			seasonalFactor *
			latitudeFactor *
			orientationFactor *
			pitchFactor *
			math.Sin(radians(pos.Altitude))

		months[m] = math.Max(0, production)
	}
	return months
}
