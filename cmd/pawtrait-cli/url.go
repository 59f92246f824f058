package main

import (
	"os"

	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url <photo-id>",
	Short: "Resolve a photo's download URL",
	Long: `Resolve a photo to its short-lived presigned download URL.

The URL expires after a few minutes; resolve it again when it does.

Examples:
  pawtrait-cli url 7f9c3b2a
  curl -o beach.jpg "$(pawtrait-cli url 7f9c3b2a)"`,
	Args: cobra.ExactArgs(1),
	RunE: runURL,
}

func runURL(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return reportError(err)
	}

	url, err := client.ContentURL(cmd.Context(), args[0])
	if err != nil {
		return reportError(err)
	}

	formatter := getFormatter()
	return formatter.FormatURL(os.Stdout, url)
}
