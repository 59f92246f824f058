// Package clientcli provides a client library for interacting with Pawtrait photo servers.
//
// It supports the full upload flow (grant, presigned PUT, metadata record),
// photo listing, and content URL resolution. Requests are authenticated with
// the x-family-id header. The package includes profile-based configuration
// for managing connections to multiple servers.
//
// # Basic Usage
//
// Create a client and upload a photo:
//
//	cfg := &clientcli.Config{
//		Endpoint: "http://localhost:8080",
//		FamilyID: "family-smith",
//	}
//
//	client, err := clientcli.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.Upload(ctx, clientcli.UploadOptions{
//		LocalPath: "./beach.jpg",
//		Title:     "Beach day",
//	})
//
// # Profile Configuration
//
// Use profiles to manage multiple server configurations:
//
//	configFile, err := clientcli.LoadConfigFile(clientcli.DefaultConfigPath())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	profile, err := configFile.GetProfile("home")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := clientcli.ConfigFromProfile(profile)
//	client, err := clientcli.New(cfg)
//
// # Output Formatting
//
// Use formatters for human-readable or JSON output:
//
//	formatter := clientcli.NewFormatter(jsonOutput, quiet)
//	formatter.FormatList(os.Stdout, photos)
package clientcli
