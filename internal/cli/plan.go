package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"footprint/internal/history"
	"footprint/internal/plan"
	"footprint/internal/store"
)

// newPlanCmd creates the "plan" command: a stepped reduction plan from the
// latest saved calculation (or an explicit --current value).
func newPlanCmd() *cobra.Command {
	var (
		target  float64
		current float64
		output  string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a personalized carbon reduction plan",
		Long: `Build a three-month reduction plan toward a target percentage.

The current footprint comes from your most recent saved calculation, or from
--current when you haven't saved one yet.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executePlan(cmd, target, current, output)
		},
	}

	cmd.Flags().Float64Var(&target, "target", plan.DefaultTargetPercent, "Target reduction percentage")
	cmd.Flags().Float64Var(&current, "current", 0, "Current annual footprint in tonnes (overrides history)")
	cmd.Flags().StringVar(&output, "output", "table", "Output format: table or json")
	return cmd
}

func executePlan(cmd *cobra.Command, target, current float64, output string) error {
	if current == 0 {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
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

		latest := history.MostRecent(entries)
		if latest == nil {
			return fmt.Errorf("no saved calculations; run 'footprint calc --save' first or pass --current")
		}
		current = latest.CO2eTonnes
	}

	p := plan.Build(current, target)

	if output == "json" {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Reduction plan: %s\n\n", p.Summary())
	for _, step := range p.Steps {
		cmd.Printf("  Month %d — %s: %s (≈ %.2f t)\n",
			step.Month, step.Focus, step.Action, step.ExpectedReduction)
	}
	return nil
}
