package record

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
)

// RecordCmd returns the record parent command
func RecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Manage the records shown on the board",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(SetCmd())
	cmd.AddCommand(UnsetCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// open initializes the CLI for a record command, reporting failures
func open(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context(), cmd)
	if err != nil {
		return nil, nil, formatter.Fail("INITIALIZATION_ERROR", err)
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}, nil
}
