package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"footprint/internal/config"
	"footprint/internal/equiv"
	"footprint/internal/footprint"
	"footprint/internal/history"
	"footprint/internal/store"
)

// calcParams holds the flag values for the calc command.
type calcParams struct {
	inputPath string
	output    string
	save      bool
	notes     string

	input footprint.CategoryInput
}

// calcOutput is the JSON shape of a calc run.
type calcOutput struct {
	Result     footprint.Result   `json:"result"`
	Comparison history.Comparison `json:"comparison"`
	Equivalent equiv.Output       `json:"equivalencies"`
}

// newCalcCmd creates the "calc" command: estimate, compare against history,
// optionally save.
func newCalcCmd() *cobra.Command {
	var params calcParams

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate your annual carbon footprint",
		Long: `Estimate annual CO2e emissions from lifestyle quantities.

Inputs come from flags, from a YAML file via --input, or both (flags win).
Negative or malformed quantities are treated as zero and percent values are
capped at 100; bad input never blocks a calculation. The estimate is
compared against your most recent saved calculation when history exists.`,
		Example: calcExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalc(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.inputPath, "input", "", "Path to a YAML file of category inputs")
	cmd.Flags().StringVar(&params.output, "output", "table", "Output format: table or json")
	cmd.Flags().BoolVar(&params.save, "save", false, "Save the result to the history log")
	cmd.Flags().StringVar(&params.notes, "notes", "", "Notes to store with a saved result")

	cmd.Flags().Float64Var(&params.input.CarMiles, "car-miles", 0, "Car miles driven per month")
	cmd.Flags().Float64Var(&params.input.Flights, "flights", 0, "Short-haul flight trips per year")
	cmd.Flags().Float64Var(&params.input.PublicTransportTrips, "public-transport-trips", 0,
		"Public transport trips per month")
	cmd.Flags().Float64Var(&params.input.ElectricityUsage, "electricity", 0, "Electricity use per month (kWh)")
	cmd.Flags().Float64Var(&params.input.GasUsage, "gas", 0, "Natural gas use per month")
	cmd.Flags().Float64Var(&params.input.RenewablePercent, "renewable-percent", 0,
		"Share of electricity from renewables (0-100)")
	cmd.Flags().Float64Var(&params.input.MeatMeals, "meat-meals", 0, "Meat meals per week")
	cmd.Flags().Float64Var(&params.input.DairyServings, "dairy-servings", 0, "Dairy servings per week")
	cmd.Flags().Float64Var(&params.input.LocalFoodPercent, "local-food-percent", 0,
		"Share of food sourced locally (0-100)")
	cmd.Flags().Float64Var(&params.input.WasteBags, "waste-bags", 0, "Bags of landfill waste per week")
	cmd.Flags().Float64Var(&params.input.RecyclingPercent, "recycling-percent", 0,
		"Share of waste recycled (0-100)")
	cmd.Flags().Float64Var(&params.input.ShoppingSpend, "shopping-spend", 0, "General shopping spend per month")
	cmd.Flags().Float64Var(&params.input.ElectronicsSpend, "electronics-spend", 0,
		"Electronics spend per year")

	return cmd
}

const calcExample = `  # Flags only
  footprint calc --car-miles 100 --electricity 300 --renewable-percent 50

  # From a YAML input file, saving the result
  footprint calc --input my-month.yaml --save --notes "january"

  # JSON output for scripting
  footprint calc --car-miles 100 --output json`

// executeCalc runs the estimate → compare → render (→ save) pipeline.
func executeCalc(cmd *cobra.Command, params calcParams) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	input, err := resolveInput(cmd, params)
	if err != nil {
		return err
	}

	factors, err := config.LoadFactors(cfg.Factors.File)
	if err != nil {
		return err
	}

	result, err := footprint.Estimate(input, factors)
	if err != nil {
		// Configuration failures block the calculation outright; a silent
		// zero result would look like a real estimate.
		return fmt.Errorf("cannot calculate: %w", err)
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.GetAll(cmd.Context())
	if err != nil {
		return err
	}

	cmp := history.Compare(result, history.MostRecent(entries))
	eq := equiv.Calculate(result.TotalTonnes, factors.Conversions.TreesPerTonne)

	if params.save {
		entry := &store.Entry{
			Category:   result.Category,
			CO2eTonnes: result.TotalTonnes,
			Timestamp:  result.Timestamp,
			Notes:      params.notes,
		}
		if err := st.Append(cmd.Context(), entry); err != nil {
			return fmt.Errorf("saving result: %w", err)
		}
		logger.Info().
			Str("operation", "save").
			Str("entry_id", entry.ID).
			Float64("total_tonnes", entry.CO2eTonnes).
			Msg("calculation saved")
	}

	switch params.output {
	case "json":
		data, err := json.MarshalIndent(calcOutput{Result: result, Comparison: cmp, Equivalent: eq}, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
	default:
		cmd.Print(renderSummary(result, cmp, eq))
		if params.save {
			cmd.Println("Saved to history.")
		}
	}

	return nil
}

// resolveInput merges the optional YAML input file with flag values.
// Flags that were explicitly set override the file.
func resolveInput(cmd *cobra.Command, params calcParams) (footprint.CategoryInput, error) {
	if params.inputPath == "" {
		return params.input, nil
	}

	data, err := os.ReadFile(params.inputPath)
	if err != nil {
		return footprint.CategoryInput{}, fmt.Errorf("reading input file %s: %w", params.inputPath, err)
	}

	var input footprint.CategoryInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return footprint.CategoryInput{}, fmt.Errorf("parsing input file %s: %w", params.inputPath, err)
	}

	// Flag overrides, field by field.
	overrides := map[string]*float64{
		"car-miles":              &input.CarMiles,
		"flights":                &input.Flights,
		"public-transport-trips": &input.PublicTransportTrips,
		"electricity":            &input.ElectricityUsage,
		"gas":                    &input.GasUsage,
		"renewable-percent":      &input.RenewablePercent,
		"meat-meals":             &input.MeatMeals,
		"dairy-servings":         &input.DairyServings,
		"local-food-percent":     &input.LocalFoodPercent,
		"waste-bags":             &input.WasteBags,
		"recycling-percent":      &input.RecyclingPercent,
		"shopping-spend":         &input.ShoppingSpend,
		"electronics-spend":      &input.ElectronicsSpend,
	}
	for name, dst := range overrides {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetFloat64(name)
			*dst = v
		}
	}

	return input, nil
}
