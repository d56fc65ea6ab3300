package board

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
	"github.com/thenoetrevino/paso-board/internal/models"
)

// ReorderCmd returns the board reorder subcommand
func ReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <record> <index>",
		Short: "Move a card within its column",
		Long: `Move a card to a new position in its own column and renumber the
column's sort field 1..n (n..1 when the sort is descending).

Requires exactly one --sort, on a numeric field.

Examples:
  paso-board board reorder notes/ship.md 0 --sort order
  paso-board board reorder notes/ship.md 2 --sort order:desc --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runReorder,
	}
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	index, err := strconv.Atoi(args[1])
	if err != nil || index < 0 {
		return formatter.Fail("INVALID_INDEX", fmt.Errorf("%w: index %q", cli.ErrMalformedInput, args[1]))
	}

	cliInstance, done, err := load(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	col, _, ok := cliInstance.App.Board.Snapshot().Locate(args[0])
	if !ok {
		return formatter.Fail("RECORD_NOT_ON_BOARD", fmt.Errorf("%w: %s", models.ErrUnknownRecord, args[0]))
	}

	out, err := cliInstance.App.Board.MoveCard(ctx, args[0], col.Name, index)
	return report(formatter, cliInstance, out, err)
}
