package calculator

import "math"

// roofAreaPerPanel is the roof area in sq ft needed for one panel including
// spacing.
const roofAreaPerPanel = 17.5

// PanelSizeInput is the consumption and panel data for sizing an array.
type PanelSizeInput struct {
	MonthlyUsage float64 `json:"monthlyUsage"` // kWh per month
	SunHours     float64 `json:"sunHours"`     // peak sun hours per day
	PanelWattage float64 `json:"panelWattage"` // W per panel
	SystemLosses float64 `json:"systemLosses"` // percent
}

// PanelSizeResult is the number of panels and what they add up to.
type PanelSizeResult struct {
	NumberOfPanels int     `json:"numberOfPanels"`
	SystemSizeKW   float64 `json:"systemSizeKW"`
	RoofAreaSqFt   float64 `json:"roofAreaSqFt"`
}

// PanelSize returns the number of panels needed to cover the monthly usage.
func PanelSize(in PanelSizeInput) (PanelSizeResult, error) {
	usage := Clamp(in.MonthlyUsage)
	sunHours := Clamp(in.SunHours)
	wattage := Clamp(in.PanelWattage)
	losses := Clamp(in.SystemLosses)

	if err := requirePositive("sunHours", sunHours); err != nil {
		return PanelSizeResult{}, err
	}
	if err := requirePositive("panelWattage", wattage); err != nil {
		return PanelSizeResult{}, err
	}
	if err := requirePositive("systemLosses headroom", 100-losses); err != nil {
		return PanelSizeResult{}, err
	}

	dailyEnergyWh := usage * 1000 / 30
	panels := math.Ceil(dailyEnergyWh / (wattage * sunHours * (1 - losses/100)))

	return PanelSizeResult{
		NumberOfPanels: int(panels),
		SystemSizeKW:   panels * wattage / 1000,
		RoofAreaSqFt:   math.Ceil(panels * roofAreaPerPanel),
	}, nil
}

func (r PanelSizeResult) outputs() []Output {
	return []Output{
		integerOutput("numberOfPanels", "Number of Panels", "", float64(r.NumberOfPanels)),
		decimalOutput("systemSize", "System Size", "kW", r.SystemSizeKW, 2),
		integerOutput("roofArea", "Roof Area Required", "sq ft", r.RoofAreaSqFt),
	}
}

var panelSizeDefinition = Definition{
	ID:          "panel-size",
	Name:        "Panel Size",
	Description: "Work out how many panels cover your monthly consumption.",
	Fields: []Field{
		{Name: "monthlyUsage", Label: "Monthly Usage", Unit: "kWh", Type: FieldTypeNumber, Default: 300.0},
		{Name: "sunHours", Label: "Peak Sun Hours", Unit: "h/day", Type: FieldTypeNumber, Default: 5.0},
		{Name: "panelWattage", Label: "Panel Wattage", Unit: "W", Type: FieldTypeNumber, Default: 400.0},
		{Name: "systemLosses", Label: "System Losses", Unit: "%", Type: FieldTypeNumber, Default: 14.0},
	},
	evaluate: evaluatePanelSize,
}

func evaluatePanelSize(d Definition, v Values) ([]Output, error) {
	r, err := PanelSize(PanelSizeInput{
		MonthlyUsage: v.number(d.field("monthlyUsage")),
		SunHours:     v.number(d.field("sunHours")),
		PanelWattage: v.number(d.field("panelWattage")),
		SystemLosses: v.number(d.field("systemLosses")),
	})
	if err != nil {
		return nil, err
	}
	return r.outputs(), nil
}
