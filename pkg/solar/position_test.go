package solar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSolarPosition(t *testing.T) {
	// day 81 of 2024 is the equinox in this model, so the declination is zero
	equinoxNoon := time.Date(2024, time.March, 21, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 81, equinoxNoon.YearDay())

	t.Run("Noon At Equinox", func(t *testing.T) {
		pos := SolarPosition(20, equinoxNoon)
		assert.InDelta(t, 70.0, pos.Altitude, 1e-9)
		assert.InDelta(t, 180.0, pos.Azimuth, 1e-4)
	})

	t.Run("Sunrise At Equator", func(t *testing.T) {
		pos := SolarPosition(0, equinoxNoon.Add(-6*time.Hour))
		assert.InDelta(t, 0.0, pos.Altitude, 1e-6)
	})

	t.Run("Summer Sun Higher Than Winter", func(t *testing.T) {
		summer := SolarPosition(28.6, time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC))
		winter := SolarPosition(28.6, time.Date(2024, time.December, 21, 12, 0, 0, 0, time.UTC))
		assert.Greater(t, summer.Altitude, winter.Altitude)
	})

	t.Run("Azimuth Is Finite", func(t *testing.T) {
		for h := 0; h < 24; h++ {
			pos := SolarPosition(12.97, time.Date(2024, time.May, 1, h, 0, 0, 0, time.UTC))
			assert.False(t, math.IsNaN(pos.Azimuth), "azimuth is NaN at hour %d", h)
		}
	})
}
