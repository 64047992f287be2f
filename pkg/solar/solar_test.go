package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemEfficiency(t *testing.T) {
	t.Run("Standard Conditions", func(t *testing.T) {
		assert.InDelta(t, 20.0, SystemEfficiency(20, StandardTestTemp, 0, 0), 1e-9)
	})

	t.Run("Hot And Dirty", func(t *testing.T) {
		// 10°C above STC loses 4%, then 2% soiling and 3% wiring
		assert.InDelta(t, 18.25152, SystemEfficiency(20, 35, 2, 3), 1e-9)
	})

	t.Run("Cold Gains", func(t *testing.T) {
		assert.InDelta(t, 20.8, SystemEfficiency(20, 15, 0, 0), 1e-9)
	})
}

func TestEnergyProduction(t *testing.T) {
	t.Run("Ideal Orientation", func(t *testing.T) {
		// 5 kW at 20% for 5 hours a day
		assert.InDelta(t, 1825.0, EnergyProduction(5, 20, 5, 0, 90, 0), 1e-9)
	})

	t.Run("Shading", func(t *testing.T) {
		assert.InDelta(t, 1460.0, EnergyProduction(5, 20, 5, 0, 90, 20), 1e-9)
	})

	t.Run("Orientation Off South", func(t *testing.T) {
		assert.InDelta(t, 912.5, EnergyProduction(5, 20, 5, 60, 90, 0), 1e-9)
	})
}

func TestEnvironment(t *testing.T) {
	assert.InDelta(t, 1.0, CO2Offset(2204.62, 1), 1e-12)
	assert.InDelta(t, 0.5, CO2Offset(1102.31, 1), 1e-12)
	assert.InDelta(t, 92.592, TreeEquivalent(2), 1e-9)
	assert.Equal(t, 0.0, TreeEquivalent(0))
}

func TestRatios(t *testing.T) {
	assert.InDelta(t, 80.0, PerformanceRatio(80, 100), 1e-12)
	assert.InDelta(t, 1500.0, EnergyYield(7500, 5), 1e-12)
}
