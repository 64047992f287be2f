package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisDisplay(t *testing.T) {
	irr := 12.345
	d := Analysis{AnnualSavings: 123456.4, IRR: &irr, NPV: -1500, LCOE: 4.567}.Display()
	assert.Equal(t, "₹1,23,456", d["annualSavings"])
	assert.Equal(t, "12.35%", d["irr"])
	assert.Equal(t, "-₹1,500", d["npv"])
	assert.Equal(t, "₹4.57/kWh", d["lcoe"])

	d = Analysis{}.Display()
	assert.Equal(t, "-", d["irr"])
	assert.Equal(t, "0 kWh", d["annualProduction"])
}
