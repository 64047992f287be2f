// Package solar contains the physical and financial models used by the
// advanced solar calculator. Every function is pure; angles are in degrees and
// rates or losses are in percent unless noted otherwise.
package solar

import (
	"errors"
	"math"
)

const (
	// SolarConstant is the standard test irradiance in W/m².
	SolarConstant = 1000.0
	// StandardTestTemp is the cell temperature in °C at standard test conditions.
	StandardTestTemp = 25.0
	// EarthTilt is the axial tilt of the earth in degrees.
	EarthTilt = 23.45

	// temperatureCoefficient is the fractional efficiency change per °C above
	// StandardTestTemp.
	temperatureCoefficient = -0.004

	lbsPerMetricTon = 2204.62
	// treesPerTonCO2 is the number of trees absorbing one metric ton of CO2 in
	// a year (~48 lbs per tree).
	treesPerTonCO2 = 46.296
)

var (
	// ErrNoSolution is returned by IRR when no rate in [0, 100]% zeroes the NPV.
	ErrNoSolution = errors.New("no solution found")
	// ErrInvalidInput is returned when an input makes a formula undefined.
	ErrInvalidInput = errors.New("invalid input")
)

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// SystemEfficiency derates the panel base efficiency for cell temperature,
// soiling and wiring losses.
func SystemEfficiency(baseEfficiency, temperature, soilingLoss, wireLosses float64) float64 {
	temperatureEffect := (temperature - StandardTestTemp) * temperatureCoefficient
	return baseEfficiency * (1 + temperatureEffect) * (1 - soilingLoss/100) * (1 - wireLosses/100)
}

// EnergyProduction returns the annual production in kWh.
func EnergyProduction(systemSize, efficiency, sunHours, orientation, pitch, shading float64) float64 {
	orientationFactor := math.Cos(radians(orientation))
	pitchFactor := math.Cos(radians(90 - pitch))
	shadingFactor := 1 - shading/100

	return systemSize * efficiency / 100 * sunHours * orientationFactor * pitchFactor * shadingFactor * 365
}

// CO2Offset converts annual production and a grid emission factor in lbs/kWh
// into metric tons of CO2 avoided per year.
func CO2Offset(annualProduction, gridEmissionFactor float64) float64 {
	return annualProduction * gridEmissionFactor / lbsPerMetricTon
}

// TreeEquivalent returns the number of trees that absorb co2Offset metric tons
// per year.
func TreeEquivalent(co2Offset float64) float64 {
	return co2Offset * treesPerTonCO2
}

// PerformanceRatio returns actual production as a percentage of theoretical.
func PerformanceRatio(actualProduction, theoreticalProduction float64) float64 {
	return actualProduction / theoreticalProduction * 100
}

// EnergyYield returns the specific yield in kWh/kWp.
func EnergyYield(annualProduction, systemSizeKWp float64) float64 {
	return annualProduction / systemSizeKWp
}
