// Package cli wires the footprint command tree: estimation, history,
// planning, tips, and configuration commands built on cobra.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"footprint/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootFlags holds persistent flag values shared by all subcommands.
type rootFlags struct {
	configPath  string
	dbPath      string
	factorsPath string
	debug       bool
}

// NewRootCmd creates the root cobra command for the footprint CLI.
// It wires up logging and the calc, history, plan, tips, and config
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:     "footprint",
		Short:   "Estimate and track your carbon footprint",
		Long:    "Footprint: estimate annual CO2e emissions from lifestyle inputs and track them over time",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			lc := cfg.Logging
			if flags.debug {
				lc.Level = "debug"
				lc.Format = "console"
				lc.File = ""
			}
			if err := config.InitLogger(lc); err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			logger = config.GetLogger().With().Str("component", "cli").Logger()

			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			config.CloseLogFile()
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"path to config.yaml (default ~/.footprint/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "",
		"path to the history database (overrides config)")
	cmd.PersistentFlags().StringVar(&flags.factorsPath, "factors", "",
		"path to an emission factors YAML file (overrides config)")

	cmd.AddCommand(newCalcCmd(), newHistoryCmd(), newPlanCmd(), newTipsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Estimate from the command line
  footprint calc --car-miles 100 --electricity 300 --renewable-percent 50

  # Estimate from a saved input file and record the result
  footprint calc --input my-month.yaml --save --notes "january"

  # Show past calculations with a trend line
  footprint history

  # Export history to CSV
  footprint history export --out footprint.csv

  # Build a 20% reduction plan from the latest calculation
  footprint plan --target 20

  # Show reduction tips for a category
  footprint tips energy

  # Write editable default config and factor files
  footprint config init`

// loadConfig reads the application config honoring the persistent flags.
// Flag overrides (--db, --factors) replace the corresponding config values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if factorsPath, _ := cmd.Flags().GetString("factors"); factorsPath != "" {
		cfg.Factors.File = factorsPath
	}

	return cfg, nil
}
