package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ViewRepo stores per-view configuration values
type ViewRepo struct {
	db *sql.DB
}

// Get returns the stored value, or nil when the key is unset
func (r *ViewRepo) Get(ctx context.Context, view, key string) (any, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM view_config WHERE view = ? AND key = ?`, view, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s of view %s: %w", key, view, err)
	}
	return value, nil
}

// Set stores a value. An empty value clears the key.
func (r *ViewRepo) Set(ctx context.Context, view, key, value string) error {
	if value == "" {
		_, err := r.db.ExecContext(ctx, `DELETE FROM view_config WHERE view = ? AND key = ?`, view, key)
		if err != nil {
			return fmt.Errorf("failed to clear %s of view %s: %w", key, view, err)
		}
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO view_config (view, key, value) VALUES (?, ?, ?)
		ON CONFLICT (view, key) DO UPDATE SET value = excluded.value
	`, view, key, value)
	if err != nil {
		return fmt.Errorf("failed to save %s of view %s: %w", key, view, err)
	}
	return nil
}

// Slot scopes the repository to one view
func (r *ViewRepo) Slot(view string) *ViewSlot {
	return &ViewSlot{repo: r, view: view}
}

// ViewSlot is the configuration of a single view
type ViewSlot struct {
	repo *ViewRepo
	view string
}

// View returns the view name
func (s *ViewSlot) View() string {
	return s.view
}

// Get reads a key of the view
func (s *ViewSlot) Get(ctx context.Context, key string) (any, error) {
	return s.repo.Get(ctx, s.view, key)
}

// Set writes a key of the view
func (s *ViewSlot) Set(ctx context.Context, key, value string) error {
	return s.repo.Set(ctx, s.view, key, value)
}
