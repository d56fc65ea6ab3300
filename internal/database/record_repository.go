package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/paso-board/internal/models"
)

// RecordRepo stores records and their ordered fields
type RecordRepo struct {
	db *sql.DB
}

// Create inserts a record with its fields in declaration order.
// Absent values are skipped.
func (r *RecordRepo) Create(ctx context.Context, id string, fields []models.Field) (*models.Record, error) {
	rec := &models.Record{ID: id}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO records (id) VALUES (?)`, id); err != nil {
			return fmt.Errorf("failed to insert record %s: %w", id, err)
		}
		for _, f := range fields {
			if f.Value.IsAbsent() {
				continue
			}
			if err := upsertField(ctx, tx, id, f.Name, f.Value); err != nil {
				return err
			}
			rec.Fields = append(rec.Fields, f)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetAll returns every record with its fields, ordered by ID
func (r *RecordRepo) GetAll(ctx context.Context) ([]*models.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, f.name, f.kind, f.value
		FROM records r
		LEFT JOIN record_fields f ON f.record_id = r.id
		ORDER BY r.id, f.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var (
		records []*models.Record
		current *models.Record
	)
	for rows.Next() {
		var (
			id                string
			name, kind, value sql.NullString
		)
		if err := rows.Scan(&id, &name, &kind, &value); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if current == nil || current.ID != id {
			current = &models.Record{ID: id}
			records = append(records, current)
		}
		if !name.Valid {
			continue
		}
		v, err := decodeValue(kind.String, value.String)
		if err != nil {
			return nil, fmt.Errorf("record %s field %s: %w", id, name.String, err)
		}
		current.Fields = append(current.Fields, models.Field{Name: name.String, Value: v})
	}
	return records, rows.Err()
}

// GetByID returns one record with its fields
func (r *RecordRepo) GetByID(ctx context.Context, id string) (*models.Record, error) {
	if err := r.exists(ctx, r.db, id); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, kind, value FROM record_fields WHERE record_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query fields of %s: %w", id, err)
	}
	defer rows.Close()

	rec := &models.Record{ID: id}
	for rows.Next() {
		var name, kind, value string
		if err := rows.Scan(&name, &kind, &value); err != nil {
			return nil, fmt.Errorf("failed to scan field: %w", err)
		}
		v, err := decodeValue(kind, value)
		if err != nil {
			return nil, fmt.Errorf("record %s field %s: %w", id, name, err)
		}
		rec.Fields = append(rec.Fields, models.Field{Name: name, Value: v})
	}
	return rec, rows.Err()
}

// Delete removes a record and its fields
func (r *RecordRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", models.ErrRecordNotFound, id)
	}
	return nil
}

// SetField assigns a field. A new field is appended after the existing ones;
// an existing field keeps its position.
func (r *RecordRepo) SetField(ctx context.Context, id, name string, value models.Value) error {
	if value.IsAbsent() {
		return r.DeleteField(ctx, id, name)
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := r.exists(ctx, tx, id); err != nil {
			return err
		}
		if err := upsertField(ctx, tx, id, name, value); err != nil {
			return err
		}
		return touch(ctx, tx, id)
	})
}

// DeleteField removes a field. Removing a field the record does not have is
// not an error.
func (r *RecordRepo) DeleteField(ctx context.Context, id, name string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := r.exists(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM record_fields WHERE record_id = ? AND name = ?`, id, name); err != nil {
			return fmt.Errorf("failed to delete field %s of %s: %w", name, id, err)
		}
		return touch(ctx, tx, id)
	})
}

// querier is satisfied by *sql.DB and *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *RecordRepo) exists(ctx context.Context, q querier, id string) error {
	var found string
	err := q.QueryRowContext(ctx, `SELECT id FROM records WHERE id = ?`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", models.ErrRecordNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to look up record %s: %w", id, err)
	}
	return nil
}

func upsertField(ctx context.Context, tx *sql.Tx, id, name string, value models.Value) error {
	kind, text, err := encodeValue(value)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO record_fields (record_id, position, name, kind, value)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM record_fields WHERE record_id = ?), ?, ?, ?)
		ON CONFLICT (record_id, name) DO UPDATE SET kind = excluded.kind, value = excluded.value
	`, id, id, name, kind, text)
	if err != nil {
		return fmt.Errorf("failed to set field %s of %s: %w", name, id, err)
	}
	return nil
}

func touch(ctx context.Context, tx *sql.Tx, id string) error {
	_, err := tx.ExecContext(ctx, `UPDATE records SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}
