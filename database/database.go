package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sagarc03/pawtrait"
	"github.com/sagarc03/pawtrait/database/dynamo"
	"github.com/sagarc03/pawtrait/database/postgres"
	"github.com/sagarc03/pawtrait/database/sqlite"

	_ "modernc.org/sqlite" // SQLite driver
)

// Config holds the configuration for connecting to a metadata backend.
type Config struct {
	// Type specifies the backend type: "dynamo", "postgres" or "sqlite"
	Type string `mapstructure:"type"`
	// DSN is the data source name for SQL backends
	DSN string `mapstructure:"dsn"`
	// Table is the name of the photos table
	Table string `mapstructure:"table"`
	// Region is the AWS region for the dynamo backend
	Region string `mapstructure:"region"`
	// Endpoint overrides the dynamo endpoint, for local stand-ins
	Endpoint string `mapstructure:"endpoint"`
	// AccessKey and SecretKey are static credentials for local stand-ins
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Connect establishes a connection to the configured metadata backend,
// runs migrations, validates the schema, and returns a PhotoRepo.
// The returned cleanup function should be called to close the connection.
func Connect(ctx context.Context, cfg Config) (pawtrait.PhotoRepo, func(), error) {
	switch cfg.Type {
	case "dynamo":
		return connectDynamo(ctx, cfg)
	case "postgres":
		return connectPostgres(ctx, cfg.DSN, cfg.Table)
	case "sqlite":
		return connectSQLite(ctx, cfg.DSN, cfg.Table)
	default:
		return nil, nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}

func connectDynamo(ctx context.Context, cfg Config) (pawtrait.PhotoRepo, func(), error) {
	client, err := dynamo.NewClient(ctx, dynamo.Config{
		Region:    cfg.Region,
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect dynamo: %w", err)
	}

	if err = dynamo.Migrate(ctx, client, cfg.Table); err != nil {
		return nil, nil, fmt.Errorf("migrate dynamo: %w", err)
	}

	if err = dynamo.ValidateSchema(ctx, client, cfg.Table); err != nil {
		return nil, nil, fmt.Errorf("validate dynamo schema: %w", err)
	}

	repo, err := dynamo.NewRepo(client, cfg.Table)
	if err != nil {
		return nil, nil, fmt.Errorf("create dynamo repo: %w", err)
	}

	// The dynamo client holds no connection state to close.
	return repo, func() {}, nil
}

func connectSQLite(ctx context.Context, dsn, table string) (pawtrait.PhotoRepo, func(), error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err = sqlite.Migrate(ctx, db, table); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	if err = sqlite.ValidateSchema(ctx, db, table); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("validate sqlite schema: %w", err)
	}

	repo, err := sqlite.NewRepo(db, table)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("create sqlite repo: %w", err)
	}

	cleanup := func() {
		_ = db.Close()
	}

	return repo, cleanup, nil
}

func connectPostgres(ctx context.Context, dsn, table string) (pawtrait.PhotoRepo, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err = postgres.Migrate(ctx, pool, table); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrate postgres: %w", err)
	}

	if err = postgres.ValidateSchema(ctx, pool, table); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("validate postgres schema: %w", err)
	}

	repo, err := postgres.NewRepo(pool, table)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("create postgres repo: %w", err)
	}

	return repo, pool.Close, nil
}
