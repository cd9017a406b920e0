// Package main provides the profile_engine CLI, a harness over the profile scoring,
// layout and assembly engine that reads and writes JSON files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/profile-engine/internal/config"
	"github.com/jonathan/profile-engine/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "profile_engine",
	Short: "Profile scoring, career matching and document layout",
	Long: "profile_engine normalizes loose profile records, scores them against a career catalog, " +
		"measures readiness, completeness and plan progress, and assembles a document tree.",
	SilenceUsage:      true,
	PersistentPreRunE: setupRuntime,
}

var (
	configFile string
	verbose    bool
	logLevel   string
	logFormat  string
)

// Loaded once per invocation by setupRuntime.
var (
	appConfig *config.Config
	appLogger *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable reports to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json or console (overrides config)")
}

func setupRuntime(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	appConfig = cfg
	appLogger = log
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if appLogger != nil {
		_ = appLogger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
