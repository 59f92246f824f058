package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/pawtrait/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestLoad_Defaults(t *testing.T) {
	// Load with no config files should use defaults
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "dynamo", cfg.Database.Type)
	assert.Equal(t, "pawtrait.db", cfg.Database.DSN)
	assert.Equal(t, "pawtrait_photos", cfg.Database.Table)
	assert.Equal(t, "us-east-1", cfg.Database.Region)
	assert.Equal(t, "us-east-1", cfg.Storage.Region)
	assert.Equal(t, 15*time.Minute, cfg.Storage.URLTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Auth.Inline, "no families allow-listed by default")
}

func TestLoad_ConfigFile(t *testing.T) {
	configPath := writeConfigFile(t, `
server:
  port: 9000
database:
  type: postgres
  dsn: postgres://localhost/test
  table: custom_photos
storage:
  bucket: family-photos
  region: eu-west-1
  url_ttl: 5m
auth:
  allowed_family_ids: alice,bob
log:
  level: debug
`)

	cfg, err := config.Load([]string{configPath}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "postgres://localhost/test", cfg.Database.DSN)
	assert.Equal(t, "custom_photos", cfg.Database.Table)
	assert.Equal(t, "family-photos", cfg.Storage.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Storage.Region)
	assert.Equal(t, 5*time.Minute, cfg.Storage.URLTTL)
	assert.Equal(t, "alice,bob", cfg.Auth.Inline)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ConfigFileMerge(t *testing.T) {
	tmpDir := t.TempDir()

	basePath := filepath.Join(tmpDir, "base.yaml")
	baseContent := `
server:
  port: 8080
database:
  type: sqlite
  dsn: pawtrait.db
  table: pawtrait_photos
storage:
  bucket: family-photos
log:
  level: info
`
	require.NoError(t, os.WriteFile(basePath, []byte(baseContent), 0o644))

	overridePath := filepath.Join(tmpDir, "override.yaml")
	overrideContent := `
server:
  port: 9000
log:
  level: warn
`
	require.NoError(t, os.WriteFile(overridePath, []byte(overrideContent), 0o644))

	// Load with merge (later files override earlier)
	cfg, err := config.Load([]string{basePath, overridePath}, nil)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)

	// Preserved values from base
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "family-photos", cfg.Storage.Bucket)
}

func TestLoad_ValidationError_InvalidPort(t *testing.T) {
	configPath := writeConfigFile(t, `
server:
  port: 99999
log:
  level: info
`)

	_, err := config.Load([]string{configPath}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoad_ValidationError_InvalidLogLevel(t *testing.T) {
	configPath := writeConfigFile(t, `
server:
  port: 8080
log:
  level: loud
`)

	_, err := config.Load([]string{configPath}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoad_WithCORS(t *testing.T) {
	configPath := writeConfigFile(t, `
cors:
  enabled: true
  allowed_origins:
    - https://example.com
    - https://app.example.com
  allowed_methods:
    - GET
    - POST
  allowed_headers:
    - Content-Type
    - x-family-id
  max_age: 600
`)

	cfg, err := config.Load([]string{configPath}, nil)
	require.NoError(t, err)

	assert.True(t, cfg.CORS.Enabled)
	assert.Equal(t, []string{"https://example.com", "https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST"}, cfg.CORS.AllowedMethods)
	assert.Equal(t, []string{"Content-Type", "x-family-id"}, cfg.CORS.AllowedHeaders)
	assert.Equal(t, 600, cfg.CORS.MaxAge)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("PAWTRAIT_SERVER_PORT", "9090")
	t.Setenv("PAWTRAIT_DATABASE_TYPE", "postgres")
	t.Setenv("PAWTRAIT_STORAGE_BUCKET", "env-bucket")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "env-bucket", cfg.Storage.Bucket)
}

func TestLoad_EnvironmentOnly(t *testing.T) {
	// Keys with no meaningful default must still resolve from the
	// environment; a Lambda deployment has no config file or flags.
	t.Setenv("PAWTRAIT_STORAGE_BUCKET", "env-bucket")
	t.Setenv("PAWTRAIT_STORAGE_ENDPOINT", "http://minio:9000")
	t.Setenv("PAWTRAIT_STORAGE_ACCESS_KEY", "env-access")
	t.Setenv("PAWTRAIT_STORAGE_SECRET_KEY", "env-secret")
	t.Setenv("PAWTRAIT_AUTH_ALLOWED_FAMILY_IDS", "alice,bob")
	t.Setenv("PAWTRAIT_AUTH_ALLOWED_IDS_FILE", "/etc/pawtrait/families.json")
	t.Setenv("PAWTRAIT_DATABASE_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("PAWTRAIT_DATABASE_ACCESS_KEY", "db-access")
	t.Setenv("PAWTRAIT_DATABASE_SECRET_KEY", "db-secret")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "env-bucket", cfg.Storage.Bucket)
	assert.Equal(t, "http://minio:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "env-access", cfg.Storage.AccessKey)
	assert.Equal(t, "env-secret", cfg.Storage.SecretKey)
	assert.Equal(t, "alice,bob", cfg.Auth.Inline)
	assert.Equal(t, "/etc/pawtrait/families.json", cfg.Auth.File)
	assert.Equal(t, "http://dynamodb:8000", cfg.Database.Endpoint)
	assert.Equal(t, "db-access", cfg.Database.AccessKey)
	assert.Equal(t, "db-secret", cfg.Database.SecretKey)
}
