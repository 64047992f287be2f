// Package calculator implements the energy calculators offered on the shop:
// savings, panel sizing, battery storage, ROI and carbon offset. Each one is a
// pure function over a typed input; Map exposes them by ID so they can be
// listed and evaluated generically from HTTP or the command line.
package calculator

import (
	"errors"
	"fmt"
	"math"

	"github.com/suryakart/suryakart/pkg/format"
)

var (
	// ErrInvalidInput is returned when an input would make a result undefined.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownCalculator is returned by Map for an unregistered ID.
	ErrUnknownCalculator = errors.New("unknown calculator")
)

// systemLifetimeYears is the lifetime assumed for savings and ROI.
const systemLifetimeYears = 25

// Clamp replaces negative (and NaN) inputs with zero, the same way the form
// fields refuse negative numbers.
func Clamp(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

func requirePositive(field string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidInput, field)
	}
	return nil
}

// FieldType is the kind of input control a field needs.
type FieldType string

const (
	FieldTypeNumber FieldType = "number"
	FieldTypeSelect FieldType = "select"
)

// Choice is one value of a select field.
type Choice struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// Field describes one calculator input.
type Field struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Unit    string    `json:"unit,omitempty"`
	Type    FieldType `json:"type"`
	Default any       `json:"default,omitempty"`
	Choices []Choice  `json:"choices,omitempty"` // only for FieldTypeSelect
}

// OutputFormat selects how an output is rendered for display.
type OutputFormat string

const (
	OutputFormatINR     OutputFormat = "inr"
	OutputFormatDecimal OutputFormat = "decimal"
	OutputFormatInteger OutputFormat = "integer"
)

// Output is one calculated value together with its display string.
type Output struct {
	Name    string       `json:"name"`
	Label   string       `json:"label"`
	Unit    string       `json:"unit,omitempty"`
	Format  OutputFormat `json:"format"`
	Value   float64      `json:"value"`
	Display string       `json:"display"`
}

func inrOutput(name, label string, v float64) Output {
	return Output{Name: name, Label: label, Unit: "INR", Format: OutputFormatINR, Value: v, Display: format.INRAmount(v)}
}

func decimalOutput(name, label, unit string, v float64, decimals int) Output {
	return Output{Name: name, Label: label, Unit: unit, Format: OutputFormatDecimal, Value: v, Display: format.Number(v, decimals)}
}

func integerOutput(name, label, unit string, v float64) Output {
	return Output{Name: name, Label: label, Unit: unit, Format: OutputFormatInteger, Value: v, Display: format.Number(v, 0)}
}

// Values are the raw inputs of a generic evaluation. Missing numbers and
// options fall back to the field defaults.
type Values struct {
	Numbers map[string]float64 `json:"inputs"`
	Options map[string]string  `json:"options"`
}

// number returns the clamped value of field f or its default.
func (v Values) number(f Field) float64 {
	if n, ok := v.Numbers[f.Name]; ok {
		return Clamp(n)
	}
	if d, ok := f.Default.(float64); ok {
		return d
	}
	return 0
}

func (v Values) option(f Field) string {
	if o, ok := v.Options[f.Name]; ok && o != "" {
		return o
	}
	if d, ok := f.Default.(string); ok {
		return d
	}
	return ""
}

// Definition describes a calculator and how to evaluate it from Values.
type Definition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`

	evaluate func(Definition, Values) ([]Output, error)
}

// Evaluation is the result of evaluating a Definition.
type Evaluation struct {
	ID      string   `json:"id"`
	Outputs []Output `json:"outputs"`
}

// Output returns the named output.
func (e Evaluation) Output(name string) (Output, bool) {
	for _, o := range e.Outputs {
		if o.Name == name {
			return o, true
		}
	}
	return Output{}, false
}

// Evaluate runs the calculator over values.
func (d Definition) Evaluate(values Values) (Evaluation, error) {
	if d.evaluate == nil {
		return Evaluation{}, fmt.Errorf("calculator %s has no implementation", d.ID)
	}
	outputs, err := d.evaluate(d, values)
	if err != nil {
		return Evaluation{}, err
	}
	for _, o := range outputs {
		if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
			return Evaluation{}, fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, o.Name)
		}
	}
	return Evaluation{ID: d.ID, Outputs: outputs}, nil
}

// field returns the named field of d, panicking if it is missing since the
// definitions are static.
func (d Definition) field(name string) Field {
	for _, f := range d.Fields {
		if f.Name == name {
			return f
		}
	}
	panic(fmt.Sprintf("calculator %s has no field %s", d.ID, name))
}
