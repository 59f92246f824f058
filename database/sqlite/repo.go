// Package sqlite implements the photo metadata repo using SQLite
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sagarc03/pawtrait"
)

type Repo struct {
	db        *sql.DB
	tableName string
}

func NewRepo(db *sql.DB, tableName string) (*Repo, error) {
	if err := pawtrait.ValidateTableName(tableName); err != nil {
		return nil, fmt.Errorf("new repo: %w", err)
	}

	return &Repo{db: db, tableName: tableName}, nil
}

// Ping verifies database connectivity
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repo) Put(ctx context.Context, item pawtrait.PhotoMetadata) (pawtrait.PhotoMetadata, error) {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`INSERT INTO %s (family_id, photo_id, object_key, uploaded_at, content_type, title, description, taken_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (family_id, photo_id) DO UPDATE
		SET object_key = excluded.object_key,
			uploaded_at = excluded.uploaded_at,
			content_type = excluded.content_type,
			title = excluded.title,
			description = excluded.description,
			taken_at = excluded.taken_at`, r.tableName)

	uploadedAt := item.UploadedAt.UTC().Format(time.RFC3339Nano)

	_, err := r.db.ExecContext(ctx, query,
		item.FamilyID, item.PhotoID, item.ObjectKey, uploadedAt,
		item.ContentType, item.Title, item.Description, item.TakenAt,
	)
	if err != nil {
		return pawtrait.PhotoMetadata{}, fmt.Errorf("put: %w", err)
	}

	return r.Get(ctx, item.FamilyID, item.PhotoID)
}

func (r *Repo) Get(ctx context.Context, familyID, photoID string) (pawtrait.PhotoMetadata, error) {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`SELECT family_id, photo_id, object_key, uploaded_at, content_type, title, description, taken_at
		FROM %s
		WHERE family_id = ? AND photo_id = ?`, r.tableName)

	var m pawtrait.PhotoMetadata
	var uploadedAt string

	err := r.db.QueryRowContext(ctx, query, familyID, photoID).Scan(
		&m.FamilyID, &m.PhotoID, &m.ObjectKey, &uploadedAt,
		&m.ContentType, &m.Title, &m.Description, &m.TakenAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pawtrait.PhotoMetadata{}, pawtrait.ErrNotFound
		}
		return pawtrait.PhotoMetadata{}, fmt.Errorf("get: %w", err)
	}

	m.UploadedAt, err = time.Parse(time.RFC3339Nano, uploadedAt)
	if err != nil {
		return pawtrait.PhotoMetadata{}, fmt.Errorf("get: parse uploaded_at: %w", err)
	}

	return m, nil
}

func (r *Repo) ListByFamily(ctx context.Context, familyID string) ([]pawtrait.PhotoMetadata, error) {
	query := fmt.Sprintf( //nolint:gosec // G201: table name is validated
		`SELECT family_id, photo_id, object_key, uploaded_at, content_type, title, description, taken_at
		FROM %s
		WHERE family_id = ?
		ORDER BY uploaded_at DESC, photo_id`, r.tableName)

	rows, err := r.db.QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("list by family: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []pawtrait.PhotoMetadata{}
	for rows.Next() {
		var m pawtrait.PhotoMetadata
		var uploadedAt string

		if scanErr := rows.Scan(
			&m.FamilyID, &m.PhotoID, &m.ObjectKey, &uploadedAt,
			&m.ContentType, &m.Title, &m.Description, &m.TakenAt,
		); scanErr != nil {
			return nil, fmt.Errorf("list by family: scan: %w", scanErr)
		}

		m.UploadedAt, err = time.Parse(time.RFC3339Nano, uploadedAt)
		if err != nil {
			return nil, fmt.Errorf("list by family: parse uploaded_at: %w", err)
		}

		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list by family: rows: %w", err)
	}

	return items, nil
}
