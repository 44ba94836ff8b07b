package main

import (
	"errors"
	"fmt"

	"realestate_backend/internal/app"
	"realestate_backend/internal/config"
	"realestate_backend/internal/database"
	"realestate_backend/internal/logger"
	"realestate_backend/internal/models"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "web",
		Short:         "Real estate listings API",
		Long:          "HTTP API for realtors publishing home listings and buyers sending inquiries about them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newKeyCmd(),
	)

	return root
}

// loadConfig loads the configuration and initializes the logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return app.Run(cfg)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			logger.Info("Database schema migrated")
			return nil
		},
	}
}

func newKeyCmd() *cobra.Command {
	var (
		emailAddr string
		userType  string
	)

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print a sign-up product key for an email and role",
		Long: `Generate the product key a REALTOR or ADMIN needs to sign up.

The key is bound to the email and role, and derived from the configured
PRODUCT_KEY_SECRET.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if emailAddr == "" {
				return errors.New("--email is required")
			}
			role, ok := models.ParseUserType(userType)
			if !ok {
				return fmt.Errorf("invalid --type %q: must be BUYER, REALTOR or ADMIN", userType)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			key, err := app.NewCredentials(cfg).GenerateProductKey(emailAddr, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}

	cmd.Flags().StringVar(&emailAddr, "email", "", "email address the key is issued for")
	cmd.Flags().StringVar(&userType, "type", string(models.UserTypeRealtor), "role: BUYER, REALTOR or ADMIN")

	return cmd
}
