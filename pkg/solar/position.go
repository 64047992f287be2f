package solar

import (
	"math"
	"time"
)

// Position is the apparent position of the sun in degrees.
type Position struct {
	Altitude float64 `json:"altitude"`
	Azimuth  float64 `json:"azimuth"`
}

// SolarPosition approximates the sun position at latitude for t. Only the day
// of year and the hour of t (in its own location) are used; the hour angle is
// 15° per hour from solar noon.
func SolarPosition(latitude float64, t time.Time) Position {
	declination := EarthTilt * math.Sin(radians(360.0/365.0*float64(t.YearDay()-81)))
	hourAngle := 15 * float64(12-t.Hour())

	lat := radians(latitude)
	dec := radians(declination)

	altitude := math.Asin(
		math.Sin(lat)*math.Sin(dec) +
			math.Cos(lat)*math.Cos(dec)*math.Cos(radians(hourAngle)),
	)

	// rounding can push the ratio just outside acos's domain at solar noon
	ratio := (math.Sin(dec) - math.Sin(altitude)*math.Sin(lat)) / (math.Cos(altitude) * math.Cos(lat))
	azimuth := math.Acos(math.Max(-1, math.Min(1, ratio)))

	return Position{
		Altitude: degrees(altitude),
		Azimuth:  degrees(azimuth),
	}
}
