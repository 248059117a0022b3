package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string // Optional runtime config file (default ./schedsim.yaml)
	logLevel   string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-event simulator for single-CPU scheduling policies",
}

// initCommand resolves the runtime configuration for cmd and applies its log level.
// Unrecoverable: exits through logrus.Fatalf.
func initCommand(cmd *cobra.Command) *Config {
	cfg, err := LoadConfig(cmd, configPath)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
	}
	logrus.SetLevel(level)
	return cfg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags shared by every subcommand
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Runtime config file (default ./schedsim.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", defaultLogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
}
