package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration loaded from config.yaml.
// A zero-value section falls back to the corresponding default.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Factors  FactorsConfig  `yaml:"factors"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig locates the SQLite history database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// FactorsConfig locates an optional emission-factors YAML overlay.
// When File is empty the compiled-in defaults are used.
type FactorsConfig struct {
	File string `yaml:"file"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DefaultConfigDir returns the per-user configuration directory,
// ~/.footprint, falling back to the working directory when the home
// directory cannot be resolved.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".footprint"
	}
	return filepath.Join(home, ".footprint")
}

// DefaultConfigPath returns the default config.yaml location.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Default returns a Config populated with default paths and logging settings.
func Default() *Config {
	dir := DefaultConfigDir()
	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(dir, "footprint.db")},
		Factors:  FactorsConfig{File: ""},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads a Config from the given YAML file, applied on top of Default().
// A missing file at the default path is not an error; first-run users get
// the defaults without touching disk. An explicitly requested file that does
// not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// An overlay that clears a default path would leave the store with
	// nowhere to write; restore the defaults for blanked sections.
	if cfg.Database.Path == "" {
		cfg.Database.Path = Default().Database.Path
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}

// Write marshals the Config to YAML at path, creating parent directories.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
