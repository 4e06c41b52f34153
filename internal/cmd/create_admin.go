package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bookstore/internal/infra"
	"bookstore/internal/repositories"
	"bookstore/internal/services"
	mem "bookstore/pkg/memcache"
	"bookstore/pkg/utils"
)

var (
	adminEmail    string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an ADMIN account or promote an existing one",
	Long: `Create an ADMIN account with the given email and password.

If the email is already registered the account is promoted to ADMIN and
its password is replaced.`,
	RunE: runCreateAdmin,
}

func init() {
	rootCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email address")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	if adminPassword == "" {
		return errors.New("password must not be empty")
	}

	cfg, db, logger, err := openStore()
	if err != nil {
		return err
	}
	defer infra.CloseDatabase(db, logger)

	if err := infra.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	tokens, err := utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return err
	}
	accounts := services.NewAccountService(repositories.NewAccountRepository(db), tokens, mem.NewRevokedTokens(), logger)

	account, created, err := accounts.EnsureAdmin(cmd.Context(), adminEmail, adminPassword)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (id %d)\n", account.Email, account.ID)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Promoted %s (id %d) to admin\n", account.Email, account.ID)
	}
	return nil
}
