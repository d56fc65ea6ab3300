package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/config"
	"github.com/thenoetrevino/paso-board/internal/database"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/query"
)

func setupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

func statusQuery() query.Query {
	return query.Query{
		GroupBy: "status",
		Sort:    []models.SortSpec{{Property: "note.order", Direction: models.Ascending}},
	}
}

func seed(t *testing.T, repo *database.Repository) {
	t.Helper()
	ctx := context.Background()
	for _, r := range []struct {
		id     string
		status string
		order  float64
	}{
		{"a.md", "Todo", 1},
		{"b.md", "Todo", 2},
		{"c.md", "Done", 1},
	} {
		_, err := repo.CreateRecord(ctx, r.id, []models.Field{
			{Name: "status", Value: models.String(r.status)},
			{Name: "order", Value: models.Number(r.order)},
		})
		require.NoError(t, err)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	a := New(setupTestRepo(t), statusQuery())
	defer func() { _ = a.Close() }()

	assert.NotNil(t, a.Engine)
	assert.NotNil(t, a.ColumnService)
	assert.NotNil(t, a.MutationService)
	assert.NotNil(t, a.Board)
	assert.NotNil(t, a.Events())
	assert.Equal(t, config.DefaultView, a.View())
}

func TestNew_ViewSelection(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	a := New(repo, statusQuery(), WithBoardConfig(config.BoardConfig{DefaultView: "sprint"}))
	assert.Equal(t, "sprint", a.View())

	b := New(repo, statusQuery(), WithBoardConfig(config.BoardConfig{DefaultView: "sprint"}), WithView("triage"))
	assert.Equal(t, "triage", b.View())
}

func TestApp_EndToEndReorder(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	seed(t, repo)
	a := New(repo, statusQuery())
	defer func() { _ = a.Close() }()
	ctx := context.Background()

	require.NoError(t, a.Board.Refresh(ctx))
	snap := a.Board.Snapshot()
	assert.Equal(t, "status", snap.BackingField)
	assert.True(t, snap.HasSortField)

	out, err := a.Board.MoveCard(ctx, "b.md", "Todo", 0)
	require.NoError(t, err)
	assert.IsType(t, board.ReorderCards{}, out.Intent)

	b, err := repo.GetRecord(ctx, "b.md")
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Get("order").Num())
	aRec, err := repo.GetRecord(ctx, "a.md")
	require.NoError(t, err)
	assert.Equal(t, 2.0, aRec.Get("order").Num())
}

func TestApp_EndToEndMoveAndColumnOrder(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	seed(t, repo)
	a := New(repo, statusQuery())
	defer func() { _ = a.Close() }()
	ctx := context.Background()

	require.NoError(t, a.Board.Refresh(ctx))
	_, err := a.Board.MoveCard(ctx, "a.md", "Done", 0)
	require.NoError(t, err)

	rec, err := repo.GetRecord(ctx, "a.md")
	require.NoError(t, err)
	assert.Equal(t, "Done", rec.Get("status").Text())

	// Column order survives a fresh app on the same view
	require.NoError(t, a.Board.Refresh(ctx))
	_, err = a.Board.MoveColumn(ctx, "Todo", 0)
	require.NoError(t, err)

	again := New(repo, statusQuery())
	defer func() { _ = again.Close() }()
	require.NoError(t, again.Board.Refresh(ctx))
	assert.Equal(t, []string{"Todo", "Done"}, again.Board.Snapshot().ColumnNames())
}

func TestClose(t *testing.T) {
	t.Parallel()

	a := New(setupTestRepo(t), statusQuery())
	assert.NoError(t, a.Close())
}

func TestOpen(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Board.Database = database.MemoryPath

	a, err := Open(context.Background(), cfg, statusQuery())
	require.NoError(t, err)
	assert.NoError(t, a.Close())
}
