package calculator

import (
	"fmt"
	"math"
)

// GridSource is the dominant generation source of the grid being offset.
type GridSource string

const (
	GridSourceCoal       GridSource = "coal"
	GridSourceNaturalGas GridSource = "natural_gas"
	GridSourceMixed      GridSource = "mixed"
)

// treesPerTon is the number of trees absorbing one short ton of CO2 a year.
const treesPerTon = 46.3

// CO2PerKWh returns the emissions of the grid source in lbs of CO2 per kWh.
// Unknown sources are treated as a mixed grid.
func (g GridSource) CO2PerKWh() float64 {
	switch g {
	case GridSourceCoal:
		return 2.2
	case GridSourceNaturalGas:
		return 0.9
	default:
		return 1.5
	}
}

// CarbonInput is the production being credited against the grid.
type CarbonInput struct {
	MonthlyProduction float64    `json:"monthlyProduction"` // kWh per month
	SystemLife        float64    `json:"systemLife"`        // years
	GridSource        GridSource `json:"gridSource"`
}

// CarbonResult is the CO2 avoided in short tons and its tree equivalent.
type CarbonResult struct {
	AnnualCO2Tons   float64 `json:"annualCO2Tons"`
	LifetimeCO2Tons float64 `json:"lifetimeCO2Tons"`
	TreesPlanted    int     `json:"treesPlanted"`
}

// CarbonOffset converts solar production into avoided CO2 emissions.
func CarbonOffset(in CarbonInput) (CarbonResult, error) {
	monthly := Clamp(in.MonthlyProduction)
	life := Clamp(in.SystemLife)

	annualProduction := monthly * 12
	annualCO2 := annualProduction * in.GridSource.CO2PerKWh() / 2000
	lifetimeCO2 := annualCO2 * life

	return CarbonResult{
		AnnualCO2Tons:   annualCO2,
		LifetimeCO2Tons: lifetimeCO2,
		TreesPlanted:    int(math.Round(lifetimeCO2 * treesPerTon)),
	}, nil
}

func (r CarbonResult) outputs() []Output {
	return []Output{
		decimalOutput("annualCO2", "Annual CO2 Offset", "tons", r.AnnualCO2Tons, 1),
		decimalOutput("lifetimeCO2", "Lifetime CO2 Offset", "tons", r.LifetimeCO2Tons, 1),
		integerOutput("treesPlanted", "Equivalent Trees Planted", "", float64(r.TreesPlanted)),
	}
}

var carbonDefinition = Definition{
	ID:          "carbon",
	Name:        "Carbon Offset",
	Description: "CO2 emissions avoided by your system and the trees it is worth.",
	Fields: []Field{
		{Name: "monthlyProduction", Label: "Monthly Production", Unit: "kWh", Type: FieldTypeNumber, Default: 600.0},
		{Name: "systemLife", Label: "System Life", Unit: "years", Type: FieldTypeNumber, Default: 25.0},
		{
			Name:    "gridSource",
			Label:   "Grid Source",
			Type:    FieldTypeSelect,
			Default: string(GridSourceMixed),
			Choices: []Choice{
				{Value: string(GridSourceCoal), Name: "Coal"},
				{Value: string(GridSourceNaturalGas), Name: "Natural Gas"},
				{Value: string(GridSourceMixed), Name: "Mixed Grid"},
			},
		},
	},
	evaluate: evaluateCarbon,
}

func evaluateCarbon(d Definition, v Values) ([]Output, error) {
	source := GridSource(v.option(d.field("gridSource")))
	if !validChoice(d.field("gridSource"), string(source)) {
		return nil, fmt.Errorf("%w: unknown gridSource %q", ErrInvalidInput, source)
	}
	r, err := CarbonOffset(CarbonInput{
		MonthlyProduction: v.number(d.field("monthlyProduction")),
		SystemLife:        v.number(d.field("systemLife")),
		GridSource:        source,
	})
	if err != nil {
		return nil, err
	}
	return r.outputs(), nil
}

func validChoice(f Field, value string) bool {
	for _, c := range f.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
