// Package board holds the commands that show the board and perform drags
package board

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/app"
	engine "github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/cli"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the board and move cards and columns",
		Long: `Show the board and move cards and columns.

The board groups records by --group-by (default note.status) and orders
cards by --sort. Moving a card to another column rewrites the field the
board is grouped by; reordering inside a column renumbers the sort field.`,
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ReorderCmd())
	cmd.AddCommand(DragCmd())
	cmd.AddCommand(WatchCmd())

	return cmd
}

// load initializes the CLI and reads the board once
func load(cmd *cobra.Command, formatter *cli.OutputFormatter, opts ...app.Option) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context(), cmd, opts...)
	if err != nil {
		return nil, nil, formatter.Fail("INITIALIZATION_ERROR", err)
	}
	done := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}

	if err := cliInstance.App.Board.Refresh(cmd.Context()); err != nil {
		done()
		return nil, nil, formatter.Fail("BOARD_LOAD_ERROR", err)
	}
	return cliInstance, done, nil
}

// report prints the outcome of a drop. Rejected drops fail the command.
func report(formatter *cli.OutputFormatter, cliInstance *cli.CLI, out engine.Outcome, err error) error {
	notes := cli.DrainNotifications(cliInstance.App.Notifications())

	if rejected, ok := out.Intent.(engine.Rejected); ok && err == nil {
		return formatter.Fail("DROP_REJECTED", rejected.Reason)
	}
	if err != nil {
		formatter.Notify(notes)
		return formatter.Fail("DROP_FAILED", err)
	}

	view := cli.NewOutcomeView(out)
	view.Notifications = notes
	if formatter.JSON {
		return formatter.Success(view)
	}
	if formatter.Quiet {
		return nil
	}

	formatter.Notify(notes)
	formatter.Printf("%s\n", view.Describe())
	return nil
}
