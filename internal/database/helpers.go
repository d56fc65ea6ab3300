package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/paso-board/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// storedItem is the JSON form of one list element
type storedItem struct {
	Kind  string       `json:"kind"`
	Value string       `json:"value"`
	Items []storedItem `json:"items,omitempty"`
}

// encodeValue returns the kind and value columns for v.
// Scalars are stored as canonical text, lists as JSON.
func encodeValue(v models.Value) (string, string, error) {
	if v.Kind() != models.KindList {
		return v.Kind().String(), models.Canonical(v), nil
	}
	data, err := json.Marshal(toItems(v.Items()))
	if err != nil {
		return "", "", fmt.Errorf("failed to encode list: %w", err)
	}
	return models.KindList.String(), string(data), nil
}

func toItems(values []models.Value) []storedItem {
	items := make([]storedItem, len(values))
	for i, v := range values {
		items[i] = storedItem{Kind: v.Kind().String(), Value: models.Canonical(v)}
		if v.Kind() == models.KindList {
			items[i].Value = ""
			items[i].Items = toItems(v.Items())
		}
	}
	return items
}

// decodeValue reverses encodeValue
func decodeValue(kind, text string) (models.Value, error) {
	k := models.ParseKind(kind)
	if k != models.KindList {
		return models.ParseValue(k, text)
	}
	var items []storedItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return models.Value{}, fmt.Errorf("failed to decode list: %w", err)
	}
	return fromItems(items)
}

func fromItems(items []storedItem) (models.Value, error) {
	values := make([]models.Value, 0, len(items))
	for _, item := range items {
		var (
			v   models.Value
			err error
		)
		if models.ParseKind(item.Kind) == models.KindList {
			v, err = fromItems(item.Items)
		} else {
			v, err = models.ParseValue(models.ParseKind(item.Kind), item.Value)
		}
		if err != nil {
			return models.Value{}, err
		}
		values = append(values, v)
	}
	return models.List(values...), nil
}
