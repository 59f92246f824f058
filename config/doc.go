// Package config provides configuration loading and validation for Pawtrait.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (PAWTRAIT_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with PAWTRAIT_ prefix:
//   - server.port → PAWTRAIT_SERVER_PORT
//   - database.type → PAWTRAIT_DATABASE_TYPE
//   - storage.bucket → PAWTRAIT_STORAGE_BUCKET
//
// # Configuration Structure
//
// The Config struct contains:
//   - Server: port
//   - Database: backend type, DSN, table name, and AWS region/endpoint
//   - Storage: bucket, region, endpoint, credentials, and presigned-URL TTL
//   - Auth: allow-listed family ids, inline or from a file
//   - CORS: cross-origin resource sharing settings
//   - Log: logging level
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Log level must be debug, info, warn, or error
package config
