package record

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
)

// AddCmd returns the record add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [id]",
		Short: "Create a record",
		Long: `Create a record with frontmatter fields.

Field kinds are inferred (numbers, true/false, dates, [[links]], #tags);
force one with name:kind=value.

Examples:
  # Create a card in the Todo column
  paso-board record add notes/ship.md --field status=Todo --field order=1

  # Generated ID, captured for scripting
  ID=$(paso-board record add --field status=Todo --quiet)

  # Keep a numeric-looking value as a string
  paso-board record add --field code:string=007 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringArray("field", nil, "Field as name=value or name:kind=value; repeatable")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id := uuid.NewString()
	if len(args) == 1 {
		id = args[0]
	}

	rawFields, _ := cmd.Flags().GetStringArray("field")
	fields, err := cli.ParseFieldArgs(rawFields)
	if err != nil {
		return formatter.Fail("INVALID_FIELD", err)
	}

	cliInstance, done, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	rec, err := cliInstance.App.Repo().CreateRecord(ctx, id, fields)
	if err != nil {
		return formatter.Fail("RECORD_CREATE_ERROR", err)
	}

	view := cli.NewRecordView(rec)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(view)
	}

	formatter.Printf("✓ Record '%s' created\n", rec.ID)
	if len(view.Fields) > 0 {
		formatter.Printf("  %s\n", view.Summary())
	}
	return nil
}
