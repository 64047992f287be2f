package calculator

// SavingsInput is the monthly bill and site data for the savings calculator.
type SavingsInput struct {
	MonthlyBill     float64 `json:"monthlyBill"`     // ₹ per month
	SunHours        float64 `json:"sunHours"`        // peak sun hours per day
	ElectricityRate float64 `json:"electricityRate"` // ₹ per kWh
	Efficiency      float64 `json:"efficiency"`      // percent of the bill offset
}

// SavingsResult holds rupee savings and the system size needed to reach them.
type SavingsResult struct {
	MonthlySavings  float64 `json:"monthlySavings"`
	AnnualSavings   float64 `json:"annualSavings"`
	LifetimeSavings float64 `json:"lifetimeSavings"`
	SystemSizeKW    float64 `json:"systemSizeKW"`
}

// Savings estimates how much of a monthly electricity bill solar offsets and
// the size of the system required.
func Savings(in SavingsInput) (SavingsResult, error) {
	bill := Clamp(in.MonthlyBill)
	sunHours := Clamp(in.SunHours)
	rate := Clamp(in.ElectricityRate)
	efficiency := Clamp(in.Efficiency)

	if err := requirePositive("electricityRate", rate); err != nil {
		return SavingsResult{}, err
	}
	if err := requirePositive("sunHours", sunHours); err != nil {
		return SavingsResult{}, err
	}
	if err := requirePositive("efficiency", efficiency); err != nil {
		return SavingsResult{}, err
	}

	monthlyUsage := bill / rate
	dailyUsage := monthlyUsage / 30
	monthlySavings := bill * (efficiency / 100)
	annualSavings := monthlySavings * 12

	return SavingsResult{
		MonthlySavings:  monthlySavings,
		AnnualSavings:   annualSavings,
		LifetimeSavings: annualSavings * systemLifetimeYears,
		SystemSizeKW:    (dailyUsage / sunHours) / (efficiency / 100),
	}, nil
}

func (r SavingsResult) outputs() []Output {
	return []Output{
		inrOutput("monthlySavings", "Monthly Savings", r.MonthlySavings),
		inrOutput("annualSavings", "Annual Savings", r.AnnualSavings),
		inrOutput("lifetimeSavings", "25 Year Savings", r.LifetimeSavings),
		decimalOutput("systemSize", "Recommended System Size", "kW", r.SystemSizeKW, 2),
	}
}

var savingsDefinition = Definition{
	ID:          "savings",
	Name:        "Solar Savings",
	Description: "Estimate monthly, annual and lifetime savings from your electricity bill.",
	Fields: []Field{
		{Name: "monthlyBill", Label: "Monthly Electricity Bill", Unit: "INR", Type: FieldTypeNumber, Default: 3000.0},
		{Name: "sunHours", Label: "Peak Sun Hours", Unit: "h/day", Type: FieldTypeNumber, Default: 5.0},
		{Name: "electricityRate", Label: "Electricity Rate", Unit: "INR/kWh", Type: FieldTypeNumber, Default: 8.0},
		{Name: "efficiency", Label: "System Efficiency", Unit: "%", Type: FieldTypeNumber, Default: 80.0},
	},
	evaluate: evaluateSavings,
}

func evaluateSavings(d Definition, v Values) ([]Output, error) {
	r, err := Savings(SavingsInput{
		MonthlyBill:     v.number(d.field("monthlyBill")),
		SunHours:        v.number(d.field("sunHours")),
		ElectricityRate: v.number(d.field("electricityRate")),
		Efficiency:      v.number(d.field("efficiency")),
	})
	if err != nil {
		return nil, err
	}
	return r.outputs(), nil
}
