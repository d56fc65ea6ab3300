package column

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/cli"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <column> <index>",
		Short: "Move a column as if its header were dragged",
		Long: `Move a column to a new position and store the full resulting order.

Examples:
  paso-board column move Done 0
  paso-board column move "(No value)" 0 --view roadmap
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	index, err := strconv.Atoi(args[1])
	if err != nil || index < 0 {
		return formatter.Fail("INVALID_INDEX", fmt.Errorf("%w: index %q", cli.ErrMalformedInput, args[1]))
	}

	cliInstance, done, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	a := cliInstance.App
	if err := a.Board.Refresh(ctx); err != nil {
		return formatter.Fail("BOARD_LOAD_ERROR", err)
	}

	out, err := a.Board.MoveColumn(ctx, args[0], index)
	if err == nil {
		if rejected, ok := out.Intent.(board.Rejected); ok {
			err = rejected.Reason
		}
	}
	if err != nil {
		return formatter.Fail("COLUMN_MOVE_ERROR", err)
	}

	reorder, _ := out.Intent.(board.ReorderColumns)
	return printOrder(formatter, OrderView{View: a.View(), Order: reorder.Order})
}
