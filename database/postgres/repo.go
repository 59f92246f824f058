// Package postgres implements the photo metadata repo on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sagarc03/pawtrait"
)

type Repo struct {
	pool      *pgxpool.Pool
	tableName string
}

func NewRepo(pool *pgxpool.Pool, tableName string) (*Repo, error) {
	if err := pawtrait.ValidateTableName(tableName); err != nil {
		return nil, fmt.Errorf("new repo: %w", err)
	}

	return &Repo{pool: pool, tableName: tableName}, nil
}

// Ping verifies database connectivity
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *Repo) Put(ctx context.Context, item pawtrait.PhotoMetadata) (pawtrait.PhotoMetadata, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (family_id, photo_id, object_key, uploaded_at, content_type, title, description, taken_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (family_id, photo_id) DO UPDATE
		SET object_key = EXCLUDED.object_key,
			uploaded_at = EXCLUDED.uploaded_at,
			content_type = EXCLUDED.content_type,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			taken_at = EXCLUDED.taken_at
		RETURNING family_id, photo_id, object_key, uploaded_at, content_type, title, description, taken_at
	`, r.tableName)

	var stored pawtrait.PhotoMetadata
	err := r.pool.QueryRow(ctx, query,
		item.FamilyID, item.PhotoID, item.ObjectKey, item.UploadedAt,
		item.ContentType, item.Title, item.Description, item.TakenAt,
	).Scan(
		&stored.FamilyID, &stored.PhotoID, &stored.ObjectKey, &stored.UploadedAt,
		&stored.ContentType, &stored.Title, &stored.Description, &stored.TakenAt,
	)
	if err != nil {
		return pawtrait.PhotoMetadata{}, fmt.Errorf("put: %w", err)
	}

	return stored, nil
}

func (r *Repo) Get(ctx context.Context, familyID, photoID string) (pawtrait.PhotoMetadata, error) {
	query := fmt.Sprintf(`
		SELECT family_id, photo_id, object_key, uploaded_at, content_type, title, description, taken_at
		FROM %s
		WHERE family_id = $1 AND photo_id = $2
	`, r.tableName)

	var m pawtrait.PhotoMetadata
	err := r.pool.QueryRow(ctx, query, familyID, photoID).Scan(
		&m.FamilyID, &m.PhotoID, &m.ObjectKey, &m.UploadedAt,
		&m.ContentType, &m.Title, &m.Description, &m.TakenAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pawtrait.PhotoMetadata{}, pawtrait.ErrNotFound
		}
		return pawtrait.PhotoMetadata{}, fmt.Errorf("get: %w", err)
	}

	return m, nil
}

func (r *Repo) ListByFamily(ctx context.Context, familyID string) ([]pawtrait.PhotoMetadata, error) {
	query := fmt.Sprintf(`
		SELECT family_id, photo_id, object_key, uploaded_at, content_type, title, description, taken_at
		FROM %s
		WHERE family_id = $1
		ORDER BY uploaded_at DESC, photo_id
	`, r.tableName)

	rows, err := r.pool.Query(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("list by family: %w", err)
	}
	defer rows.Close()

	items := []pawtrait.PhotoMetadata{}
	for rows.Next() {
		var m pawtrait.PhotoMetadata
		if err := rows.Scan(
			&m.FamilyID, &m.PhotoID, &m.ObjectKey, &m.UploadedAt,
			&m.ContentType, &m.Title, &m.Description, &m.TakenAt,
		); err != nil {
			return nil, fmt.Errorf("list by family: scan: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list by family: rows: %w", err)
	}

	return items, nil
}
