package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/pawtrait/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "pawtrait",
	Short:   "Private photo-sharing backend with presigned uploads",
	Long: `Pawtrait is a small photo-sharing backend for families. Clients
upload photo bytes directly to object storage through presigned URLs;
the server only handles metadata.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var configFiles []string
		if cf, _ := cmd.Flags().GetString("config"); cf != "" {
			configFiles = []string{cf}
		}

		cfg, err := config.Load(configFiles, cmd.Flags())
		if err != nil {
			return err
		}

		setupLogging(cfg)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("db-type", "", "metadata backend: dynamo, postgres, sqlite (env: PAWTRAIT_DATABASE_TYPE)")
	rootCmd.PersistentFlags().String("db-dsn", "", "database connection string for SQL backends (env: PAWTRAIT_DATABASE_DSN)")
	rootCmd.PersistentFlags().String("table", "", "photos table name (default: pawtrait_photos, env: PAWTRAIT_DATABASE_TABLE)")
	rootCmd.PersistentFlags().String("bucket", "", "object storage bucket (env: PAWTRAIT_STORAGE_BUCKET)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
