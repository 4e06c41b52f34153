package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookstore/internal/config"
	"bookstore/internal/infra"
)

var rootCmd = &cobra.Command{
	Use:   "bookstore",
	Short: "Bookstore backend operator tools",
	Long: `Operator commands for the bookstore backend.

The HTTP API is started by cmd/app. These commands work directly against
the configured database and read the same environment as the server.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore loads config and opens the database. The caller closes the
// returned db with infra.CloseDatabase.
func openStore() (*config.Config, *gorm.DB, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := infra.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := infra.OpenDatabase(cfg.Database, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, db, logger, nil
}
