// Package cmd wires the galeria command line interface.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/galeria0/galeria/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "galeria",
	Short: "Galeria - AR art gallery backend",
	Long: `Galeria serves an augmented-reality art gallery: artwork storage,
AI-assisted artwork questions, contextual display rewrites, and an
image upload pipeline that turns visitor photos into gallery pieces.

Running galeria without a subcommand starts the HTTP API server.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		slog.SetDefault(log.New(logConfigFromEnv()))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(args)
	},
}

// logConfigFromEnv reads GALERIA_LOG_LEVEL (debug/info/warn/error) and
// GALERIA_LOG_JSON (true enables JSON output).
func logConfigFromEnv() log.Config {
	cfg := log.Config{Level: slog.LevelInfo}

	switch strings.ToLower(os.Getenv("GALERIA_LOG_LEVEL")) {
	case "debug":
		cfg.Level = slog.LevelDebug
		cfg.AddSource = true
	case "warn":
		cfg.Level = slog.LevelWarn
	case "error":
		cfg.Level = slog.LevelError
	}

	if strings.EqualFold(os.Getenv("GALERIA_LOG_JSON"), "true") {
		cfg.JSON = true
	}

	return cfg
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
