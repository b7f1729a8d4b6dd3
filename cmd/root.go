// Package cmd implements the patterns CLI commands.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prateeksan/patterns/internal/config"
	"github.com/prateeksan/patterns/internal/log"
	"github.com/prateeksan/patterns/internal/styles"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	closeLog func()
)

var rootCmd = &cobra.Command{
	Use:     "patterns",
	Short:   "Classic design patterns demonstrated on the command line",
	Long: `A collection of runnable demonstrations of classic object-oriented
design patterns. Each demo narrates what it is doing as it exercises the
pattern, and bundled notes explain when to reach for each one.`,
	Version:           version,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/patterns/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write a debug log to patterns-debug.log")
	rootCmd.PersistentFlags().Bool("no-color", false,
		"disable colored output")
	rootCmd.PersistentFlags().Bool("trace", false,
		"emit an OpenTelemetry span per demo run")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("tracing.enabled", rootCmd.PersistentFlags().Lookup("trace"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("no_color", defaults.NoColor)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.success", defaults.Theme.Success)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("demos.pool_limit", defaults.Demos.PoolLimit)
	viper.SetDefault("demos.memento_max_checkpoints", defaults.Demos.MementoMaxCheckpoints)
	viper.SetDefault("demos.factory_seed", defaults.Demos.FactorySeed)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	viper.SetEnvPrefix("PATTERNS")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .patterns/config.yaml (current directory)
		// 2. ~/.config/patterns/config.yaml (user config)
		if _, err := os.Stat(".patterns/config.yaml"); err == nil {
			viper.SetConfigFile(".patterns/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "patterns"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .patterns/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".patterns/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func setup(cmd *cobra.Command, args []string) error {
	if viper.GetBool("debug") {
		cleanup, err := log.Init("patterns-debug.log")
		if err != nil {
			return err
		}
		closeLog = cleanup
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	styles.Apply(styles.Theme{
		Highlight: cfg.Theme.Highlight,
		Subtle:    cfg.Theme.Subtle,
		Success:   cfg.Theme.Success,
		Error:     cfg.Theme.Error,
	}, cfg.NoColor)
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if closeLog != nil {
		closeLog()
		closeLog = nil
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
