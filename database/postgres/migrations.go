package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Migrate(ctx context.Context, pool *pgxpool.Pool, tableName string) error {
	if err := createPhotosTable(ctx, pool, tableName); err != nil {
		return fmt.Errorf("migrate up %s: %w", tableName, err)
	}
	return nil
}

func DropTables(ctx context.Context, pool *pgxpool.Pool, tableName string) error {
	quotedTable := pgx.Identifier{tableName}.Sanitize()
	if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", quotedTable)); err != nil {
		return fmt.Errorf("migrate down %s: %w", tableName, err)
	}
	return nil
}

func createPhotosTable(ctx context.Context, pool *pgxpool.Pool, tableName string) error {
	quotedTable := pgx.Identifier{tableName}.Sanitize()
	indexFamilyRecent := pgx.Identifier{fmt.Sprintf("idx_%s_family_recent", tableName)}.Sanitize()

	sql := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			family_id TEXT NOT NULL,
			photo_id TEXT NOT NULL,
			object_key TEXT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL,
			content_type TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			taken_at TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (family_id, photo_id)
		);

		CREATE INDEX IF NOT EXISTS %s
		ON %s (family_id, uploaded_at DESC, photo_id);
	`,
		quotedTable,
		indexFamilyRecent, quotedTable,
	)

	_, err := pool.Exec(ctx, sql)
	if err != nil {
		return fmt.Errorf("create photos table: %w", err)
	}
	return nil
}
