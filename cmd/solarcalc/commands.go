package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/suryakart/suryakart/pkg/calculator"
	"github.com/suryakart/suryakart/pkg/solar"
)

func rootCmd(calculators *calculator.Map) *cobra.Command {
	root := &cobra.Command{
		Use:          "solarcalc",
		Short:        "Run the Suryakart solar calculators from the command line",
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("json", false, "Print results as JSON")

	for _, d := range calculators.List() {
		root.AddCommand(calculatorCmd(d))
	}
	root.AddCommand(analysisCmd())
	root.AddCommand(positionCmd())
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func wantJSON(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("json")
	return err == nil && v
}

// calculatorCmd exposes d as a subcommand with one flag per field.
func calculatorCmd(d calculator.Definition) *cobra.Command {
	numbers := make(map[string]*float64)
	options := make(map[string]*string)

	cmd := &cobra.Command{
		Use:   d.ID,
		Short: d.Name,
		Long:  d.Description,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := calculator.Values{
				Numbers: make(map[string]float64, len(numbers)),
				Options: make(map[string]string, len(options)),
			}
			for name, v := range numbers {
				values.Numbers[name] = *v
			}
			for name, v := range options {
				values.Options[name] = *v
			}
			eval, err := d.Evaluate(values)
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), eval)
			}
			for _, o := range eval.Outputs {
				line := o.Label + ": " + o.Display
				if o.Unit != "" {
					line += " " + o.Unit
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	for _, f := range d.Fields {
		usage := f.Label
		if f.Unit != "" {
			usage += " (" + f.Unit + ")"
		}
		switch f.Type {
		case calculator.FieldTypeSelect:
			def, _ := f.Default.(string)
			var names []string
			for _, c := range f.Choices {
				names = append(names, c.Value)
			}
			options[f.Name] = cmd.Flags().String(f.Name, def, usage+": one of "+strings.Join(names, ", "))
		default:
			def, _ := f.Default.(float64)
			numbers[f.Name] = cmd.Flags().Float64(f.Name, def, usage)
		}
	}
	return cmd
}

func analysisCmd() *cobra.Command {
	s := solar.System{
		SizeKW:             5,
		BaseEfficiency:     20,
		Temperature:        25,
		SunHours:           5,
		Pitch:              90,
		Latitude:           20,
		SystemCost:         250000,
		OperatingCosts:     2000,
		Lifetime:           25,
		DiscountRate:       6,
		ElectricityRate:    8,
		GridEmissionFactor: 1.5,
	}

	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Full production, financial and environmental analysis of a system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := solar.Analyze(s)
			if err != nil {
				return err
			}
			display := a.Display()
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), struct {
					solar.Analysis
					Display map[string]string `json:"display"`
				}{a, display})
			}
			keys := make([]string, 0, len(display))
			for k := range display {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k, display[k])
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&s.SizeKW, "size", s.SizeKW, "System size (kW)")
	f.Float64Var(&s.BaseEfficiency, "efficiency", s.BaseEfficiency, "Panel efficiency (%)")
	f.Float64Var(&s.Temperature, "temperature", s.Temperature, "Cell temperature (°C)")
	f.Float64Var(&s.SoilingLoss, "soiling-loss", s.SoilingLoss, "Soiling loss (%)")
	f.Float64Var(&s.WireLosses, "wire-losses", s.WireLosses, "Wiring losses (%)")
	f.Float64Var(&s.SunHours, "sun-hours", s.SunHours, "Peak sun hours per day")
	f.Float64Var(&s.Orientation, "orientation", s.Orientation, "Deviation from south (degrees)")
	f.Float64Var(&s.Pitch, "pitch", s.Pitch, "Panel pitch (degrees)")
	f.Float64Var(&s.Shading, "shading", s.Shading, "Shading loss (%)")
	f.Float64Var(&s.Latitude, "latitude", s.Latitude, "Site latitude (degrees)")
	f.Float64Var(&s.SystemCost, "cost", s.SystemCost, "System cost (INR)")
	f.Float64Var(&s.OperatingCosts, "operating-costs", s.OperatingCosts, "Yearly operating costs (INR)")
	f.Float64Var(&s.ElectricityRate, "rate", s.ElectricityRate, "Electricity rate (INR/kWh)")
	f.IntVar(&s.Lifetime, "lifetime", s.Lifetime, "System lifetime (years)")
	f.Float64Var(&s.DiscountRate, "discount-rate", s.DiscountRate, "Discount rate (%)")
	f.Float64Var(&s.GridEmissionFactor, "grid-emissions", s.GridEmissionFactor, "Grid emission factor (lbs CO2/kWh)")
	return cmd
}

func positionCmd() *cobra.Command {
	var (
		lat float64
		at  string
	)
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Sun altitude and azimuth at a latitude and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if lat < -90 || lat > 90 {
				return fmt.Errorf("latitude %v out of range", lat)
			}
			t := time.Now()
			if at != "" {
				var err error
				if t, err = time.Parse(time.RFC3339, at); err != nil {
					return fmt.Errorf("invalid --time: %w", err)
				}
			}
			pos := solar.SolarPosition(lat, t)
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), pos)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "altitude: %.2f°\nazimuth: %.2f°\n", pos.Altitude, pos.Azimuth)
			return nil
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude (degrees)")
	cmd.Flags().StringVar(&at, "time", "", "RFC3339 time, defaults to now")
	return cmd
}
