package calculator

import "fmt"

// ROIInput is the cost and savings of a system.
type ROIInput struct {
	SystemCost      float64 `json:"systemCost"`      // ₹
	AnnualSavings   float64 `json:"annualSavings"`   // ₹ per year
	TaxCredit       float64 `json:"taxCredit"`       // percent subsidy
	MaintenanceCost float64 `json:"maintenanceCost"` // ₹ per year
}

// ROIResult is the payback and return over the system lifetime.
type ROIResult struct {
	PaybackYears  float64 `json:"paybackYears"`
	NetSavings    float64 `json:"netSavings"`
	ROIPercentage float64 `json:"roiPercentage"`
}

// ROI computes the payback period and the return over 25 years after the
// subsidy and maintenance costs.
func ROI(in ROIInput) (ROIResult, error) {
	cost := Clamp(in.SystemCost)
	savings := Clamp(in.AnnualSavings)
	credit := Clamp(in.TaxCredit)
	maintenance := Clamp(in.MaintenanceCost)

	netSystemCost := cost * (1 - credit/100)
	if err := requirePositive("net system cost", netSystemCost); err != nil {
		return ROIResult{}, err
	}
	annualNet := savings - maintenance
	// a negative annualNet never pays back and yields negative figures
	if annualNet == 0 {
		return ROIResult{}, fmt.Errorf("%w: annualSavings must differ from maintenanceCost", ErrInvalidInput)
	}

	netSavings := annualNet*systemLifetimeYears - netSystemCost
	return ROIResult{
		PaybackYears:  netSystemCost / annualNet,
		NetSavings:    netSavings,
		ROIPercentage: netSavings / netSystemCost * 100,
	}, nil
}

func (r ROIResult) outputs() []Output {
	return []Output{
		decimalOutput("paybackPeriod", "Payback Period", "years", r.PaybackYears, 1),
		inrOutput("netSavings", "25 Year Net Savings", r.NetSavings),
		decimalOutput("roi", "Return on Investment", "%", r.ROIPercentage, 1),
	}
}

var roiDefinition = Definition{
	ID:          "roi",
	Name:        "Return on Investment",
	Description: "Payback period and lifetime return after subsidy and maintenance.",
	Fields: []Field{
		{Name: "systemCost", Label: "System Cost", Unit: "INR", Type: FieldTypeNumber, Default: 250000.0},
		{Name: "annualSavings", Label: "Annual Savings", Unit: "INR", Type: FieldTypeNumber, Default: 36000.0},
		{Name: "taxCredit", Label: "Subsidy", Unit: "%", Type: FieldTypeNumber, Default: 30.0},
		{Name: "maintenanceCost", Label: "Annual Maintenance", Unit: "INR", Type: FieldTypeNumber, Default: 2000.0},
	},
	evaluate: evaluateROI,
}

func evaluateROI(d Definition, v Values) ([]Output, error) {
	r, err := ROI(ROIInput{
		SystemCost:      v.number(d.field("systemCost")),
		AnnualSavings:   v.number(d.field("annualSavings")),
		TaxCredit:       v.number(d.field("taxCredit")),
		MaintenanceCost: v.number(d.field("maintenanceCost")),
	})
	if err != nil {
		return nil, err
	}
	return r.outputs(), nil
}
