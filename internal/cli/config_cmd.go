package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"footprint/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

// newConfigInitCmd creates "config init": writes an editable config.yaml
// and factors.yaml with the compiled-in defaults.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write default config and emission factor files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := config.DefaultConfigDir()
			configPath := config.DefaultConfigPath()
			factorsPath := filepath.Join(dir, "factors.yaml")

			if !force {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
				}
			}

			cfg := config.Default()
			cfg.Factors.File = factorsPath
			if err := cfg.Write(configPath); err != nil {
				return err
			}
			if err := config.WriteFactors(factorsPath, config.DefaultFactors()); err != nil {
				return err
			}

			cmd.Printf("Wrote %s\n", configPath)
			cmd.Printf("Wrote %s\n", factorsPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}

// newConfigShowCmd creates "config show": prints the effective
// configuration and factor table after all overrides.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration and emission factors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			factors, err := config.LoadFactors(cfg.Factors.File)
			if err != nil {
				return err
			}

			cfgData, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			factorData, err := yaml.Marshal(factors)
			if err != nil {
				return err
			}

			cmd.Println("# config")
			cmd.Print(string(cfgData))
			cmd.Println("# emission factors")
			cmd.Print(string(factorData))
			return nil
		},
	}
}
