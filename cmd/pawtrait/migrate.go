package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sagarc03/pawtrait/config"
	"github.com/sagarc03/pawtrait/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the photos table and validate its schema",
	Long: `Connect to the configured metadata backend, create the photos
table if it does not exist, and validate the schema. Useful for
provisioning a backend ahead of the first serve.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	// Connect migrates and validates before returning.
	_, closeDB, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer closeDB()

	slog.Info("migration complete", "type", cfg.Database.Type, "table", cfg.Database.Table)
	return nil
}
