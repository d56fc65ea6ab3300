package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/paso-board/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the full schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "board.db")
}

// ============================================================================
// DATA FIXTURES
// ============================================================================

func createTestRecord(t *testing.T, repo *Repository, id string, fields ...models.Field) *models.Record {
	t.Helper()
	rec, err := repo.CreateRecord(context.Background(), id, fields)
	require.NoError(t, err, "failed to create record %s", id)
	return rec
}

func field(name string, v models.Value) models.Field {
	return models.Field{Name: name, Value: v}
}
