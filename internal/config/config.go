// Package config provides configuration types and defaults for the patterns CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prateeksan/patterns/internal/log"
)

// ThemeConfig holds color customization for narration output.
// Colors are hex strings, e.g. "#73F59F".
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Success   string `mapstructure:"success"`
	Error     string `mapstructure:"error"`
}

// DemosConfig holds per-demo tunables. Each value maps to a knob the
// corresponding demo exposes; zero values mean "use the demo default".
type DemosConfig struct {
	// PoolLimit caps the worker pool demo size (default 8).
	PoolLimit int `mapstructure:"pool_limit"`
	// MementoMaxCheckpoints bounds the checkpoint log (default 3).
	MementoMaxCheckpoints int `mapstructure:"memento_max_checkpoints"`
	// FactorySeed seeds the factory demo's spec generator (default 1).
	FactorySeed int64 `mapstructure:"factory_seed"`
}

// TracingConfig holds tracing configuration.
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// Config holds all configuration options for the patterns CLI.
type Config struct {
	NoColor bool          `mapstructure:"no_color"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Demos   DemosConfig   `mapstructure:"demos"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		NoColor: false,
		Theme: ThemeConfig{
			Highlight: "#73F59F",
			Subtle:    "#696969",
			Success:   "#43BF6D",
			Error:     "#FF6B6B",
		},
		Demos: DemosConfig{
			PoolLimit:             8,
			MementoMaxCheckpoints: 3,
			FactorySeed:           1,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "patterns",
		},
	}
}

// Validate checks configuration values that have hard bounds.
func Validate(cfg Config) error {
	// The pool demo starts with limit/2 idle workers and activates two of
	// them, so the limit must be at least 4. The pool itself caps at 8.
	if cfg.Demos.PoolLimit < 4 || cfg.Demos.PoolLimit > 8 {
		return fmt.Errorf("demos.pool_limit must be between 4 and 8, got %d", cfg.Demos.PoolLimit)
	}
	if cfg.Demos.MementoMaxCheckpoints < 1 {
		return fmt.Errorf("demos.memento_max_checkpoints must be at least 1, got %d", cfg.Demos.MementoMaxCheckpoints)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Patterns Configuration

# Disable colored output (same as --no-color)
no_color: false

# Narration colors (hex)
theme:
  highlight: "#73F59F"
  subtle: "#696969"
  success: "#43BF6D"
  error: "#FF6B6B"

# Per-demo tunables
demos:
  pool_limit: 8
  memento_max_checkpoints: 3
  factory_seed: 1

# Emit an OpenTelemetry span per demo run (same as --trace)
tracing:
  enabled: false
  service_name: patterns
`
}

// WriteDefaultConfig writes the commented default config to configPath,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
