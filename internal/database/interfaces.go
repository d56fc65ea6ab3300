package database

import (
	"context"

	"github.com/thenoetrevino/paso-board/internal/models"
)

// RecordRepository defines record persistence operations
type RecordRepository interface {
	CreateRecord(ctx context.Context, id string, fields []models.Field) (*models.Record, error)
	GetRecords(ctx context.Context) ([]*models.Record, error)
	GetRecord(ctx context.Context, id string) (*models.Record, error)
	DeleteRecord(ctx context.Context, id string) error
	SetField(ctx context.Context, id, name string, value models.Value) error
	DeleteField(ctx context.Context, id, name string) error
}

// ViewRepository defines per-view configuration operations
type ViewRepository interface {
	Slot(view string) *ViewSlot
}

// DataStore is everything the app needs from storage.
// Consumers can depend on the smaller interfaces instead.
type DataStore interface {
	RecordRepository
	ViewRepository
}

var _ DataStore = (*Repository)(nil)
