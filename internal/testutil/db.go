// Package testutil holds fixtures shared by command tests
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/paso-board/internal/database"
	"github.com/thenoetrevino/paso-board/internal/models"
)

// SetupTestRepo creates an in-memory database and returns its repository
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

// CreateTestRecord creates a record with the given fields
func CreateTestRecord(t *testing.T, repo *database.Repository, id string, fields ...models.Field) {
	t.Helper()
	if _, err := repo.CreateRecord(context.Background(), id, fields); err != nil {
		t.Fatalf("Failed to create record %s: %v", id, err)
	}
}

// SeedBoard creates the records of a small kanban board:
// Todo holds a.md (order 1) and b.md (order 2); Done holds c.md (order 1)
func SeedBoard(t *testing.T, repo *database.Repository) {
	t.Helper()
	for _, r := range []struct {
		id     string
		status string
		order  float64
	}{
		{"a.md", "Todo", 1},
		{"b.md", "Todo", 2},
		{"c.md", "Done", 1},
	} {
		CreateTestRecord(t, repo, r.id,
			models.Field{Name: "status", Value: models.String(r.status)},
			models.Field{Name: "order", Value: models.Number(r.order)},
		)
	}
}

// GetTestRecord loads a record or fails the test
func GetTestRecord(t *testing.T, repo *database.Repository, id string) *models.Record {
	t.Helper()
	rec, err := repo.GetRecord(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to get record %s: %v", id, err)
	}
	return rec
}
