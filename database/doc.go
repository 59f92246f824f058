// Package database provides a unified interface for connecting to photo
// metadata backends.
//
// The package supports multiple backends (DynamoDB, PostgreSQL and SQLite)
// and handles connection management, migrations, and schema validation
// automatically.
//
// # Supported Backends
//
//   - DynamoDB: the default backend; one partition per family
//   - PostgreSQL: relational backend using a pgx connection pool
//   - SQLite: lightweight backend suitable for development and single-node deployments
//
// # Usage
//
//	cfg := database.Config{
//	    Type:  "sqlite",
//	    DSN:   "pawtrait.db",
//	    Table: "pawtrait_photos",
//	}
//
//	repo, cleanup, err := database.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cleanup()
//
// The Connect function automatically:
//   - Opens the backend connection
//   - Runs schema migrations
//   - Validates the schema
//   - Returns a ready-to-use PhotoRepo
//
// # Subpackages
//
// The database package contains backend-specific implementations:
//
//   - database/dynamo: DynamoDB implementation using aws-sdk-go-v2
//   - database/postgres: PostgreSQL implementation using pgx
//   - database/sqlite: SQLite implementation using modernc.org/sqlite
package database
