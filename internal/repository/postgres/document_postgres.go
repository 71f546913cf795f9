package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"credvault/internal/model"
	"credvault/internal/repository"
)

const uniqueViolation = "23505"

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// Each collection is a table of (id TEXT PRIMARY KEY, doc JSONB); the document body
// keeps its own _id so reads never need to splice the key back in.
type DocumentPostgres[T any] struct {
	db    *sql.DB
	table string
}

// NewDocumentPostgres creates a repository over the given collection table.
func NewDocumentPostgres[T any](db *sql.DB, collection string) *DocumentPostgres[T] {
	return &DocumentPostgres[T]{
		db:    db,
		table: pgx.Identifier{collection}.Sanitize(),
	}
}

var _ repository.DocumentRepository[model.Country] = (*DocumentPostgres[model.Country])(nil)

// Insert stores doc under the _id it carries.
func (r *DocumentPostgres[T]) Insert(ctx context.Context, doc *T) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	var key struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(body, &key); err != nil {
		return fmt.Errorf("read document id: %w", err)
	}

	q := `INSERT INTO ` + r.table + ` (id, doc) VALUES ($1, $2::jsonb)`
	if _, err := r.db.ExecContext(ctx, q, key.ID, string(body)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %v", repository.ErrDuplicateID, err)
		}
		return err
	}
	return nil
}

// FindOne fetches the first document whose field equals the filter value.
func (r *DocumentPostgres[T]) FindOne(ctx context.Context, f repository.Filter) (*T, error) {
	var row *sql.Row
	if f.Field == model.IDField {
		row = r.db.QueryRowContext(ctx, `SELECT doc FROM `+r.table+` WHERE id = $1`, f.Value)
	} else {
		row = r.db.QueryRowContext(ctx, `SELECT doc FROM `+r.table+` WHERE doc->>$1 = $2 LIMIT 1`, f.Field, f.Value)
	}

	var body []byte
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &out, nil
}

// List returns up to limit documents in table order.
func (r *DocumentPostgres[T]) List(ctx context.Context, limit int) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT doc FROM `+r.table+` LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var item T
		if err := json.Unmarshal(body, &item); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SetFields merges fields into the stored document. Postgres reports matched rows
// for UPDATE, so an unchanged document still counts as 1.
func (r *DocumentPostgres[T]) SetFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	patch, err := json.Marshal(fields)
	if err != nil {
		return 0, fmt.Errorf("encode fields: %w", err)
	}
	q := `UPDATE ` + r.table + ` SET doc = doc || $2::jsonb WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, string(patch))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// AppendToList appends value to the array under field inside one UPDATE. The row
// lock serializes concurrent appends; a missing or non-array field starts empty.
func (r *DocumentPostgres[T]) AppendToList(ctx context.Context, id, field, value string) (int64, error) {
	q := `UPDATE ` + r.table + ` SET doc = jsonb_set(doc, ARRAY[$2::text],
  (CASE WHEN jsonb_typeof(doc->$2) = 'array' THEN doc->$2 ELSE '[]'::jsonb END) || jsonb_build_array($3::text))
WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, field, value)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the row with the given id.
func (r *DocumentPostgres[T]) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
