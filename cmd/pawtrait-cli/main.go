package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/pawtrait/clientcli"
)

var (
	version = "dev"

	cfgFile     string
	profileName string
	endpoint    string
	familyID    string
	jsonOutput  bool
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:     "pawtrait-cli",
	Version: version,
	Short:   "Client for Pawtrait photo servers",
	Long: `Pawtrait CLI - Client for a Pawtrait photo sharing server

Photos are uploaded in three steps: the server issues a short-lived
presigned URL, the bytes go straight to object storage, then the
metadata is recorded. The upload command runs all three.

All photo commands send the family id in the x-family-id header.
Configure profiles with 'pawtrait-cli configure add <name>' or set
PAWTRAIT_ENDPOINT and PAWTRAIT_FAMILY_ID.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.pawtrait/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "profile name (env: PAWTRAIT_PROFILE)")
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "server URL (default: http://localhost:8080, env: PAWTRAIT_ENDPOINT)")
	rootCmd.PersistentFlags().StringVarP(&familyID, "family-id", "f", "", "family id sent with every request (env: PAWTRAIT_FAMILY_ID)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(configureCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// getConfigPath returns the config file path from flag, env, or default.
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if path := clientcli.ConfigPathFromEnv(); path != "" {
		return path
	}
	return clientcli.DefaultConfigPath()
}

// buildConfig merges config from profile, env vars, and flags (flags take precedence).
func buildConfig() (*clientcli.Config, error) {
	var configs []*clientcli.Config

	// 1. Resolve a profile from the config file
	name := profileName
	if name == "" {
		name = clientcli.ProfileFromEnv()
	}

	configPath := getConfigPath()
	if configPath != "" {
		configFile, err := clientcli.LoadConfigFile(configPath)
		switch {
		case err == nil:
			profile, profileErr := configFile.GetProfile(name)
			if profileErr != nil {
				// A named profile must exist; the default one is optional.
				if name != "" {
					return nil, profileErr
				}
			} else {
				configs = append(configs, clientcli.ConfigFromProfile(profile))
			}
		case cfgFile != "":
			// Only error if the user explicitly specified a config file.
			return nil, err
		case name != "":
			return nil, err
		}
	}

	// 2. Environment variables
	configs = append(configs, clientcli.ConfigFromEnv())

	// 3. Flags
	configs = append(configs, &clientcli.Config{
		Endpoint: endpoint,
		FamilyID: familyID,
	})

	return clientcli.MergeConfig(configs...), nil
}

// getFormatter returns the appropriate formatter based on flags.
func getFormatter() clientcli.Formatter {
	return clientcli.NewFormatter(jsonOutput, quiet)
}

// getClient creates and returns a configured client.
func getClient() (*clientcli.Client, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	client, err := clientcli.New(cfg)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// reportError writes err through the active formatter and returns it.
func reportError(err error) error {
	if err == nil {
		return nil
	}
	formatter := getFormatter()
	_ = formatter.FormatError(os.Stderr, err)
	return err
}

// isUsageError reports whether err is a local validation problem rather
// than a server response.
func isUsageError(err error) bool {
	return errors.Is(err, clientcli.ErrFamilyIDRequired) ||
		errors.Is(err, clientcli.ErrEmptyPath) ||
		errors.Is(err, clientcli.ErrEmptyPhotoID)
}
