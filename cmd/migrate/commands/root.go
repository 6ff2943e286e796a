// Package commands implements the schema management CLI.
package commands

import (
	"log/slog"
	"os"

	"shelf/config"

	"github.com/spf13/cobra"
)

const envDSN = "SHELF_DATABASE_URL"

var (
	dsn     string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the shelf database schema",
	Long: `Applies the shelf schema to a PostgreSQL database.

The connection string is taken from --dsn or, when the flag is empty,
from the SHELF_DATABASE_URL environment variable.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "PostgreSQL connection URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every statement")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(modelsCmd)
}

func resolveDSN() string {
	if dsn != "" {
		return dsn
	}

	return os.Getenv(envDSN)
}

// cliConfig is the minimal configuration the gorm logger reads.
func cliConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = verbose

	return cfg
}

func cliLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
