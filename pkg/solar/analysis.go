package solar

import (
	"errors"
	"fmt"
	"math"
)

// MaxLifetime bounds the years the financial models iterate over.
const MaxLifetime = 100

// System describes an installation for a full analysis. Money is in rupees.
type System struct {
	SizeKW         float64 `json:"sizeKW"`
	BaseEfficiency float64 `json:"baseEfficiency"`
	Temperature    float64 `json:"temperature"`
	SoilingLoss    float64 `json:"soilingLoss"`
	WireLosses     float64 `json:"wireLosses"`
	SunHours       float64 `json:"sunHours"`
	Orientation    float64 `json:"orientation"`
	Pitch          float64 `json:"pitch"`
	Shading        float64 `json:"shading"`
	Latitude       float64 `json:"latitude"`

	SystemCost      float64 `json:"systemCost"`
	OperatingCosts  float64 `json:"operatingCosts"`
	ElectricityRate float64 `json:"electricityRate"`
	Lifetime        int     `json:"lifetime"`
	DiscountRate    float64 `json:"discountRate"`

	// GridEmissionFactor is in lbs CO2 per kWh.
	GridEmissionFactor float64 `json:"gridEmissionFactor"`
}

// Analysis is the result of Analyze.
type Analysis struct {
	Efficiency        float64     `json:"efficiency"`
	AnnualProduction  float64     `json:"annualProduction"`
	MonthlyProduction [12]float64 `json:"monthlyProduction"`
	AnnualSavings     float64     `json:"annualSavings"`
	LCOE              float64     `json:"lcoe"`
	NPV               float64     `json:"npv"`
	// IRR is nil when no rate in [0, 100]% zeroes the NPV.
	IRR              *float64 `json:"irr"`
	CO2Offset        float64  `json:"co2Offset"`
	TreeEquivalent   float64  `json:"treeEquivalent"`
	EnergyYield      float64  `json:"energyYield"`
	PerformanceRatio float64  `json:"performanceRatio"`
}

// Validate reports inputs that make the analysis undefined.
func (s System) Validate() error {
	if s.SizeKW <= 0 {
		return fmt.Errorf("%w: sizeKW must be positive", ErrInvalidInput)
	}
	if s.SunHours <= 0 {
		return fmt.Errorf("%w: sunHours must be positive", ErrInvalidInput)
	}
	if s.Lifetime <= 0 || s.Lifetime > MaxLifetime {
		return fmt.Errorf("%w: lifetime must be between 1 and %d years", ErrInvalidInput, MaxLifetime)
	}
	if s.DiscountRate <= -100 {
		return fmt.Errorf("%w: discountRate must be greater than -100", ErrInvalidInput)
	}
	return nil
}

func (a Analysis) finite() error {
	type figure struct {
		name  string
		value float64
	}
	figures := []figure{
		{"efficiency", a.Efficiency},
		{"annualProduction", a.AnnualProduction},
		{"annualSavings", a.AnnualSavings},
		{"lcoe", a.LCOE},
		{"npv", a.NPV},
		{"co2Offset", a.CO2Offset},
		{"treeEquivalent", a.TreeEquivalent},
		{"energyYield", a.EnergyYield},
		{"performanceRatio", a.PerformanceRatio},
	}
	for i, v := range a.MonthlyProduction {
		figures = append(figures, figure{fmt.Sprintf("monthlyProduction[%d]", i), v})
	}
	if a.IRR != nil {
		figures = append(figures, figure{"irr", *a.IRR})
	}
	for _, f := range figures {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, f.name)
		}
	}
	return nil
}

// Analyze runs every model for one system. The performance ratio compares the
// annual production against the nameplate output for the same sun hours.
func Analyze(s System) (Analysis, error) {
	if err := s.Validate(); err != nil {
		return Analysis{}, err
	}

	var a Analysis
	a.Efficiency = SystemEfficiency(s.BaseEfficiency, s.Temperature, s.SoilingLoss, s.WireLosses)
	a.AnnualProduction = EnergyProduction(s.SizeKW, a.Efficiency, s.SunHours, s.Orientation, s.Pitch, s.Shading)
	a.MonthlyProduction = MonthlyProduction(s.SizeKW, a.Efficiency, s.Latitude, s.Orientation, s.Pitch)
	a.AnnualSavings = a.AnnualProduction * s.ElectricityRate

	lcoe, err := LCOE(s.SystemCost, a.AnnualProduction, s.OperatingCosts, s.Lifetime, s.DiscountRate)
	if err != nil {
		return Analysis{}, fmt.Errorf("lcoe: %w", err)
	}
	a.LCOE = lcoe
	a.NPV = NPV(s.SystemCost, a.AnnualSavings, s.OperatingCosts, s.Lifetime, s.DiscountRate)

	irr, err := IRR(s.SystemCost, a.AnnualSavings, s.OperatingCosts, s.Lifetime)
	switch {
	case err == nil:
		a.IRR = &irr
	case errors.Is(err, ErrNoSolution):
	default:
		return Analysis{}, fmt.Errorf("irr: %w", err)
	}

	a.CO2Offset = CO2Offset(a.AnnualProduction, s.GridEmissionFactor)
	a.TreeEquivalent = TreeEquivalent(a.CO2Offset)
	a.EnergyYield = EnergyYield(a.AnnualProduction, s.SizeKW)
	a.PerformanceRatio = PerformanceRatio(a.AnnualProduction, s.SizeKW*s.SunHours*365)
	if err := a.finite(); err != nil {
		return Analysis{}, err
	}
	return a, nil
}
