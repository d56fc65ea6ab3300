package board

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/paso-board/internal/cli"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/testutil"
)

// ============================================================================
// show
// ============================================================================

func TestShowBoard_JSON(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	output, err := testutil.ExecuteCLICommand(t, repo, ShowCmd(), []string{"--sort", "order", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "board", data["view"])
	assert.Equal(t, "status", data["backing_field"])
	assert.Equal(t, "order", data["sort_field"])

	columns := data["columns"].([]any)
	require.Len(t, columns, 2)
	done := columns[0].(map[string]any)
	todo := columns[1].(map[string]any)
	assert.Equal(t, "Done", done["name"])
	assert.Equal(t, []any{"c.md"}, done["records"])
	assert.Equal(t, "Todo", todo["name"])
	assert.Equal(t, []any{"a.md", "b.md"}, todo["records"])
}

func TestShowBoard_QuietAndHuman(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)
	testutil.CreateTestRecord(t, repo, "d.md", models.Field{Name: "order", Value: models.Number(1)})

	output, err := testutil.ExecuteCLICommand(t, repo, ShowCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "Done\nTodo\n"+models.NoValueColumn+"\n", output)

	output, err = testutil.ExecuteCLICommand(t, repo, ShowCmd(), []string{"--sort", "order"})
	require.NoError(t, err)
	for _, id := range []string{"a.md", "b.md", "c.md", "d.md"} {
		assert.Contains(t, output, id)
	}
}

func TestShowBoard_StoredOrder(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)
	require.NoError(t, repo.Slot("board").Set(context.Background(), "columnOrder", "Todo,Done"))

	output, err := testutil.ExecuteCLICommand(t, repo, ShowCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "Todo\nDone\n", output)

	// Another view has its own order
	output, err = testutil.ExecuteCLICommand(t, repo, ShowCmd(), []string{"--quiet", "--view", "roadmap"})
	require.NoError(t, err)
	assert.Equal(t, "Done\nTodo\n", output)
}

// ============================================================================
// move / reorder
// ============================================================================

func TestMoveCard_AcrossColumns(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	output, err := testutil.ExecuteCLICommand(t, repo, MoveCmd(), []string{"b.md", "Done"})
	require.NoError(t, err)
	assert.Contains(t, output, "b.md moved to Done")

	assert.Equal(t, models.String("Done"), testutil.GetTestRecord(t, repo, "b.md").Get("status"))
	assert.Equal(t, models.Number(2), testutil.GetTestRecord(t, repo, "b.md").Get("order"), "sort field untouched")
}

func TestMoveCard_ToNoValueColumn(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)
	testutil.CreateTestRecord(t, repo, "d.md", models.Field{Name: "order", Value: models.Number(1)})

	output, err := testutil.ExecuteCLICommand(t, repo, MoveCmd(), []string{"a.md", models.NoValueColumn, "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "move-card", data["intent"])
	assert.Equal(t, true, data["deleted"])
	assert.True(t, testutil.GetTestRecord(t, repo, "a.md").Get("status").IsAbsent())
}

func TestMoveCard_OwnColumnWithoutIndexKeepsOrder(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	output, err := testutil.ExecuteCLICommand(t, repo, MoveCmd(), []string{"b.md", "Todo", "--sort", "order"})
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing changed")

	assert.Equal(t, models.Number(1), testutil.GetTestRecord(t, repo, "a.md").Get("order"))
	assert.Equal(t, models.Number(2), testutil.GetTestRecord(t, repo, "b.md").Get("order"))
}

func TestMoveCard_Errors(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown record", []string{"ghost.md", "Done"}, cli.ExitNotFound},
		{"unknown column", []string{"a.md", "Archive"}, cli.ExitNotFound},
		{"same column without sort", []string{"a.md", "Todo", "--index", "1"}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testutil.ExecuteCLICommand(t, repo, MoveCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCodeFor(err))
		})
	}

	assert.Equal(t, models.String("Todo"), testutil.GetTestRecord(t, repo, "a.md").Get("status"))
}

func TestReorderCard(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	output, err := testutil.ExecuteCLICommand(t, repo, ReorderCmd(), []string{"b.md", "0", "--sort", "order", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "reorder-cards", data["intent"])
	assert.Equal(t, []any{
		map[string]any{"record_id": "b.md", "value": float64(1)},
		map[string]any{"record_id": "a.md", "value": float64(2)},
	}, data["assignments"])

	assert.Equal(t, models.Number(1), testutil.GetTestRecord(t, repo, "b.md").Get("order"))
	assert.Equal(t, models.Number(2), testutil.GetTestRecord(t, repo, "a.md").Get("order"))
	assert.Equal(t, models.Number(1), testutil.GetTestRecord(t, repo, "c.md").Get("order"), "other columns untouched")
}

func TestReorderCard_Descending(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	// Descending display is b, a; moving a to the top gives a=2, b=1
	_, err := testutil.ExecuteCLICommand(t, repo, ReorderCmd(), []string{"a.md", "0", "--sort", "order:desc"})
	require.NoError(t, err)

	assert.Equal(t, models.Number(2), testutil.GetTestRecord(t, repo, "a.md").Get("order"))
	assert.Equal(t, models.Number(1), testutil.GetTestRecord(t, repo, "b.md").Get("order"))
}

func TestReorderCard_Errors(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"bad index", []string{"a.md", "first", "--sort", "order"}, cli.ExitDataErr},
		{"no sort", []string{"a.md", "1"}, cli.ExitValidation},
		{"two sorts", []string{"a.md", "1", "--sort", "order", "--sort", "status"}, cli.ExitValidation},
		{"unknown record", []string{"ghost.md", "0", "--sort", "order"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testutil.ExecuteCLICommand(t, repo, ReorderCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCodeFor(err))
		})
	}
}

// ============================================================================
// drag
// ============================================================================

func TestDragCard_AcrossColumns(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	// Columns are Done then Todo; a.md starts at (300, 60)
	output, err := testutil.ExecuteCLICommand(t, repo, DragCmd(), []string{
		"a.md", "--to", "200,65", "--to", "100,70", "--sort", "order",
	})
	require.NoError(t, err)
	assert.Contains(t, output, "a.md moved to Done")
	assert.Equal(t, models.String("Done"), testutil.GetTestRecord(t, repo, "a.md").Get("status"))
}

func TestDragCard_WithinThresholdIsNoOp(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	output, err := testutil.ExecuteCLICommand(t, repo, DragCmd(), []string{"a.md", "--to", "302,61", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "no-op", data["intent"])
	assert.Equal(t, models.String("Todo"), testutil.GetTestRecord(t, repo, "a.md").Get("status"))
}

func TestDragCard_ReleasedOffBoard(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	output, err := testutil.ExecuteCLICommand(t, repo, DragCmd(), []string{"a.md", "--to", "100,70", "--to", "900,70"})
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing changed")
	assert.Equal(t, models.String("Todo"), testutil.GetTestRecord(t, repo, "a.md").Get("status"))
}

func TestDragColumn(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	output, err := testutil.ExecuteCLICommand(t, repo, DragCmd(), []string{"Todo", "--column", "--to", "50,20", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, []any{"Todo", "Done"}, data["order"])

	stored, err := repo.Slot("board").Get(context.Background(), "columnOrder")
	require.NoError(t, err)
	assert.Equal(t, "Todo,Done", stored)
}

func TestDrag_Errors(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"malformed point", []string{"a.md", "--to", "100"}, cli.ExitDataErr},
		{"unknown card", []string{"ghost.md", "--to", "100,70"}, cli.ExitNotFound},
		{"unknown column", []string{"Archive", "--column", "--to", "100,20"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testutil.ExecuteCLICommand(t, repo, DragCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCodeFor(err))
		})
	}
}

// ============================================================================
// watch
// ============================================================================

func TestWatch_PrintsInitialBoard(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.SeedBoard(t, repo)

	output, err := testutil.ExecuteCLICommand(t, repo, WatchCmd(), []string{"--for", "100ms", "--json"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.NotEmpty(t, lines)
	data := testutil.ParseJSON(t, lines[0])["data"].(map[string]any)
	assert.Len(t, data["columns"], 2)
}
