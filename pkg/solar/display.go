package solar

import "github.com/suryakart/suryakart/pkg/format"

// Display renders every figure of a the way the shop shows it. A missing IRR
// renders as format.Invalid.
func (a Analysis) Display() map[string]string {
	irr := format.Invalid
	if a.IRR != nil {
		irr = format.Number(*a.IRR, 2) + "%"
	}
	return map[string]string{
		"efficiency":       format.Number(a.Efficiency, 2) + "%",
		"annualProduction": format.Number(a.AnnualProduction, 0) + " kWh",
		"annualSavings":    format.INR(a.AnnualSavings),
		"lcoe":             format.RupeeSymbol + format.Number(a.LCOE, 2) + "/kWh",
		"npv":              format.INR(a.NPV),
		"irr":              irr,
		"co2Offset":        format.Number(a.CO2Offset, 2) + " tons",
		"treeEquivalent":   format.Number(a.TreeEquivalent, 0),
		"energyYield":      format.Number(a.EnergyYield, 0) + " kWh/kWp",
		"performanceRatio": format.Number(a.PerformanceRatio, 1) + "%",
	}
}
