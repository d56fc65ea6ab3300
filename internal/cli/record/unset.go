package record

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
)

// UnsetCmd returns the record unset subcommand
func UnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <id> <field>",
		Short: "Remove a field from a record",
		Long: `Remove one frontmatter field. Removing a field the record does not have
succeeds.

Examples:
  paso-board record unset notes/ship.md status
`,
		Args: cobra.ExactArgs(2),
		RunE: runUnset,
	}
}

func runUnset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	id, name := args[0], args[1]

	cliInstance, done, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	if err := cliInstance.App.MutationService.DeleteField(ctx, id, name); err != nil {
		return formatter.Fail("DELETE_FIELD_ERROR", err)
	}

	rec, err := cliInstance.App.Repo().GetRecord(ctx, id)
	if err != nil {
		return formatter.Fail("RECORD_FETCH_ERROR", err)
	}
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(cli.NewRecordView(rec))
	}
	formatter.Printf("✓ %s: %s removed\n", id, name)
	return nil
}
