package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sagarc03/pawtrait/database/sqlite"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite" // SQLite driver
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "open sqlite")

	t.Cleanup(func() { _ = db.Close() })

	return db
}

func setupTestRepo(t *testing.T) *sqlite.Repo {
	t.Helper()
	ctx := context.Background()

	db := openTestDB(t)

	require.NoError(t, sqlite.Migrate(ctx, db, "photos"), "failed to migrate")
	require.NoError(t, sqlite.ValidateSchema(ctx, db, "photos"), "failed to validate")

	repo, err := sqlite.NewRepo(db, "photos")
	require.NoError(t, err, "failed to create repo")

	return repo
}
