package record

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
)

// DeleteCmd returns the record delete subcommand
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record and all its fields",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	if err := cliInstance.App.Repo().DeleteRecord(ctx, args[0]); err != nil {
		return formatter.Fail("DELETE_ERROR", err)
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{"record_id": args[0]})
	}
	formatter.Printf("✓ Record '%s' deleted\n", args[0])
	return nil
}
