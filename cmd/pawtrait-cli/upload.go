package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/pawtrait/clientcli"
)

var (
	uploadContentType string
	uploadTitle       string
	uploadDescription string
	uploadTakenAt     string
)

var uploadCmd = &cobra.Command{
	Use:   "upload <local-path>",
	Short: "Upload a photo to the server",
	Long: `Upload a photo to the server.

Requests an upload grant, sends the bytes to the presigned URL, then
records the photo's metadata. The content type is detected from the
file extension unless --content-type is set.

Examples:
  pawtrait-cli upload ./beach.jpg
  pawtrait-cli upload ./beach.jpg --title "Beach day"
  pawtrait-cli upload ./scan --content-type image/png --taken-at 2026-08-01`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadContentType, "content-type", "t", "", "override content-type")
	uploadCmd.Flags().StringVar(&uploadTitle, "title", "", "photo title")
	uploadCmd.Flags().StringVar(&uploadDescription, "description", "", "photo description")
	uploadCmd.Flags().StringVar(&uploadTakenAt, "taken-at", "", "when the photo was taken")
}

func runUpload(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return reportError(err)
	}

	opts := clientcli.UploadOptions{
		LocalPath:   args[0],
		ContentType: uploadContentType,
		Title:       uploadTitle,
		Description: uploadDescription,
		TakenAt:     uploadTakenAt,
	}

	result, err := client.Upload(cmd.Context(), opts)
	if err != nil {
		if isUsageError(err) {
			_, _ = fmt.Fprintln(os.Stderr, "Hint: set --family-id or PAWTRAIT_FAMILY_ID")
		}
		return reportError(err)
	}

	formatter := getFormatter()
	return formatter.FormatUpload(os.Stdout, result)
}
