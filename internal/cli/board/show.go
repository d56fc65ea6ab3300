package board

import (
	"fmt"

	"github.com/spf13/cobra"

	engine "github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/cli"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the board",
		Long: `Show columns in display order with their cards.

Examples:
  # Kanban by status, cards ordered by their order field
  paso-board board show --sort order

  # Group by another property
  paso-board board show --group-by note.priority --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := load(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	snap := cliInstance.App.Board.Snapshot()
	view := cli.NewBoardView(cliInstance.App.View(), snap)
	view.Notifications = cli.DrainNotifications(cliInstance.App.Notifications())

	if formatter.JSON {
		return formatter.Success(view)
	}
	if formatter.Quiet {
		for _, c := range view.Columns {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), c.Name); err != nil {
				return err
			}
		}
		return nil
	}

	formatter.Notify(view.Notifications)
	if len(view.Columns) == 0 {
		formatter.Printf("No records found\n")
		return nil
	}
	header, rows := cardGrid(snap)
	formatter.Table(header, rows)
	return nil
}

// cardGrid lays cards out with one table column per board column
func cardGrid(snap *engine.Snapshot) ([]string, [][]string) {
	header := snap.ColumnNames()
	depth := 0
	for _, c := range snap.Columns {
		depth = max(depth, len(c.Records))
	}

	rows := make([][]string, depth)
	for i := range rows {
		rows[i] = make([]string, len(snap.Columns))
		for j, c := range snap.Columns {
			if i < len(c.Records) {
				rows[i][j] = c.Records[i].ID
			}
		}
	}
	return header, rows
}
