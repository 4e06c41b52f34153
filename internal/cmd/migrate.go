package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookstore/internal/infra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the accounts, products and orders tables",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, db, logger, err := openStore()
	if err != nil {
		return err
	}
	defer infra.CloseDatabase(db, logger)

	if err := infra.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Schema migrated (%s)\n", cfg.Database.Driver)
	return nil
}
