package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter config file",
	Long: `Write a starter config file with the default settings.

The file is written to ./config.yaml unless a path is given. Existing
files are not overwritten without --force.

Examples:
  pawtrait init
  pawtrait init /etc/pawtrait/config.yaml
  pawtrait init --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const starterConfig = `server:
  port: 8080

database:
  # dynamo, postgres, or sqlite
  type: dynamo
  # DSN for the SQL backends; ignored by dynamo
  dsn: pawtrait.db
  table: pawtrait_photos
  region: us-east-1
  # endpoint, access_key, and secret_key override the AWS defaults,
  # e.g. for DynamoDB Local

storage:
  bucket: ""
  region: us-east-1
  # endpoint, access_key, and secret_key override the AWS defaults,
  # e.g. for MinIO
  url_ttl: 15m

auth:
  # comma-separated family ids; empty admits every family id
  allowed_family_ids: ""
  # optional JSON file holding an array of ids, merged with the inline list
  allowed_ids_file: ""

log:
  # debug, info, warn, or error
  level: info
`

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	path := "config.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	slog.Info("starter config written", "path", path)
	return nil
}
