package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new draft.
func (r *PGRepo) Create(ctx context.Context, d Draft) error {
	const query = `
INSERT INTO drafts (id, name, document, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)`
	doc, err := encodeDocument(d.Document)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, d.ID, d.Name(), doc, d.CreatedAt, d.UpdatedAt)
	return err
}

// Get returns a draft by ID.
func (r *PGRepo) Get(ctx context.Context, id string) (Draft, error) {
	const query = `
SELECT id, document, created_at, updated_at
FROM drafts
WHERE id = $1
LIMIT 1`
	var d Draft
	var doc string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&d.ID, &doc, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Draft{}, ErrNotFound
		}
		return Draft{}, err
	}
	if d.Document, err = decodeDocument(doc); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// List returns drafts, most recently updated first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Draft, error) {
	const query = `
SELECT id, document, created_at, updated_at
FROM drafts
ORDER BY updated_at DESC, id
LIMIT $1 OFFSET $2`
	if limit <= 0 {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Draft{}
	for rows.Next() {
		var d Draft
		var doc string
		if err := rows.Scan(&d.ID, &doc, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		if d.Document, err = decodeDocument(doc); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update replaces the stored document.
func (r *PGRepo) Update(ctx context.Context, d Draft) error {
	const query = `
UPDATE drafts
SET name = $2, document = $3, updated_at = $4
WHERE id = $1`
	doc, err := encodeDocument(d.Document)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query, d.ID, d.Name(), doc, d.UpdatedAt)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes a draft.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM drafts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
