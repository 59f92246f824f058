package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// quoteIdentifier safely quotes a SQLite identifier
func quoteIdentifier(name string) string {
	return `"` + name + `"`
}

func Migrate(ctx context.Context, db *sql.DB, tableName string) error {
	if err := createPhotosTable(ctx, db, tableName); err != nil {
		return fmt.Errorf("migrate up %s: %w", tableName, err)
	}
	return nil
}

func DropTables(ctx context.Context, db *sql.DB, tableName string) error {
	quotedTable := quoteIdentifier(tableName)
	if _, err := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", quotedTable)); err != nil {
		return fmt.Errorf("migrate down %s: %w", tableName, err)
	}
	return nil
}

func createPhotosTable(ctx context.Context, db *sql.DB, tableName string) error {
	quotedTable := quoteIdentifier(tableName)
	indexFamilyRecent := quoteIdentifier(fmt.Sprintf("idx_%s_family_recent", tableName))

	createTableSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			family_id TEXT NOT NULL,
			photo_id TEXT NOT NULL,
			object_key TEXT NOT NULL,
			uploaded_at TEXT NOT NULL,
			content_type TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			taken_at TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (family_id, photo_id)
		)
	`, quotedTable)

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	indexSQL := fmt.Sprintf(`
		CREATE INDEX IF NOT EXISTS %s ON %s (family_id, uploaded_at DESC, photo_id)
	`, indexFamilyRecent, quotedTable)

	if _, err := db.ExecContext(ctx, indexSQL); err != nil {
		return fmt.Errorf("create index family_recent: %w", err)
	}

	return nil
}
