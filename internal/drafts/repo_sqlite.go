package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"resume-builder/resume/model"
)

// sqliteTimeLayout has fixed-width fractions so text order matches time order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteRepo implements Repo on a local sqlite file.
type SQLiteRepo struct {
	DB *sql.DB
}

// Create inserts a new draft.
func (r *SQLiteRepo) Create(ctx context.Context, d Draft) error {
	doc, err := encodeDocument(d.Document)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO drafts (id, name, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.Name(), doc, formatTime(d.CreatedAt), formatTime(d.UpdatedAt),
	)
	return err
}

// Get returns a draft by ID.
func (r *SQLiteRepo) Get(ctx context.Context, id string) (Draft, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, document, created_at, updated_at FROM drafts WHERE id = ?`, id)
	d, err := scanSQLiteDraft(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Draft{}, ErrNotFound
	}
	return d, err
}

// List returns drafts, most recently updated first.
func (r *SQLiteRepo) List(ctx context.Context, limit, offset int) ([]Draft, error) {
	if limit <= 0 {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, document, created_at, updated_at FROM drafts ORDER BY updated_at DESC, id LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Draft{}
	for rows.Next() {
		d, err := scanSQLiteDraft(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update replaces the stored document.
func (r *SQLiteRepo) Update(ctx context.Context, d Draft) error {
	doc, err := encodeDocument(d.Document)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		`UPDATE drafts SET name = ?, document = ?, updated_at = ? WHERE id = ?`,
		d.Name(), doc, formatTime(d.UpdatedAt), d.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes a draft.
func (r *SQLiteRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteDraft(row rowScanner) (Draft, error) {
	var d Draft
	var doc, created, updated string
	if err := row.Scan(&d.ID, &doc, &created, &updated); err != nil {
		return Draft{}, err
	}
	var err error
	if d.CreatedAt, err = time.Parse(sqliteTimeLayout, created); err != nil {
		return Draft{}, fmt.Errorf("parse created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(sqliteTimeLayout, updated); err != nil {
		return Draft{}, fmt.Errorf("parse updated_at: %w", err)
	}
	if d.Document, err = decodeDocument(doc); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func encodeDocument(doc *model.ResumeDocument) (string, error) {
	if doc == nil {
		doc = model.New()
	}
	data, err := model.Save(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(data), nil
}

func decodeDocument(raw string) (*model.ResumeDocument, error) {
	doc, err := model.Load([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("decode stored document: %w", err)
	}
	return doc, nil
}

var _ Repo = (*SQLiteRepo)(nil)
