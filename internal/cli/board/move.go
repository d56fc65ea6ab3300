package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
)

// MoveCmd returns the board move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <record> <column>",
		Short: "Move a card to another column",
		Long: `Move a card as if it were dragged onto a column.

Dropping on another column sets the grouped field to that column's value;
"(No value)" removes the field. Dropping on the card's own column with
--index reorders it instead; without --index the card stays where it is.

Examples:
  paso-board board move notes/ship.md Done
  paso-board board move notes/ship.md "(No value)"
  paso-board board move notes/ship.md Todo --index 0 --sort order
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cmd.Flags().Int("index", 0, "Final position of the card in the target column")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := load(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	index, _ := cmd.Flags().GetInt("index")
	if !cmd.Flags().Changed("index") {
		// Keep the card's current slot when it is dropped on its own column
		if col, from, ok := cliInstance.App.Board.Snapshot().Locate(args[0]); ok && col.Name == args[1] {
			index = from
		}
	}
	out, err := cliInstance.App.Board.MoveCard(ctx, args[0], args[1], index)
	return report(formatter, cliInstance, out, err)
}
