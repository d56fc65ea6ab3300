package record

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
)

// SetCmd returns the record set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <id> <field> <value>",
		Short: "Set a field on a record",
		Long: `Set one frontmatter field. Existing fields keep their position; new
fields are appended.

Examples:
  paso-board record set notes/ship.md status Done
  paso-board record set notes/ship.md due 2025-01-31 --kind date
`,
		Args: cobra.ExactArgs(3),
		RunE: runSet,
	}

	cmd.Flags().String("kind", "", "Value kind (string, number, boolean, date, list, link, tag); inferred when empty")

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	id, name := args[0], args[1]

	kind, _ := cmd.Flags().GetString("kind")
	value, err := cli.ParseValueArg(kind, args[2])
	if err != nil {
		return formatter.Fail("INVALID_VALUE", err)
	}

	cliInstance, done, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	if err := cliInstance.App.MutationService.SetField(ctx, id, name, value); err != nil {
		return formatter.Fail("SET_FIELD_ERROR", err)
	}

	rec, err := cliInstance.App.Repo().GetRecord(ctx, id)
	if err != nil {
		return formatter.Fail("RECORD_FETCH_ERROR", err)
	}
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(cli.NewRecordView(rec))
	}
	formatter.Printf("✓ %s: %s = %s\n", id, name, value)
	return nil
}
