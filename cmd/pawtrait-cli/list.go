package main

import (
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the family's photos",
	Long: `List every photo recorded for the family, newest first.

Examples:
  pawtrait-cli list
  pawtrait-cli list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	client, err := getClient()
	if err != nil {
		return reportError(err)
	}

	photos, err := client.List(cmd.Context())
	if err != nil {
		return reportError(err)
	}

	formatter := getFormatter()
	return formatter.FormatList(os.Stdout, photos)
}
