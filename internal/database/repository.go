package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/paso-board/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*RecordRepo
	*ViewRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		RecordRepo: &RecordRepo{db: db},
		ViewRepo:   &ViewRepo{db: db},
	}
}

// Wrapper methods for RecordRepo to maintain a flat API
func (r *Repository) CreateRecord(ctx context.Context, id string, fields []models.Field) (*models.Record, error) {
	return r.RecordRepo.Create(ctx, id, fields)
}

func (r *Repository) GetRecords(ctx context.Context) ([]*models.Record, error) {
	return r.RecordRepo.GetAll(ctx)
}

func (r *Repository) GetRecord(ctx context.Context, id string) (*models.Record, error) {
	return r.RecordRepo.GetByID(ctx, id)
}

func (r *Repository) DeleteRecord(ctx context.Context, id string) error {
	return r.RecordRepo.Delete(ctx, id)
}
