package record

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
)

// ListCmd returns the record list subcommand
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List records",
		Long: `List every record with its fields in declaration order.

Examples:
  # Human-readable table
  paso-board record list

  # JSON output for agents
  paso-board record list --json

  # Quiet mode (one ID per line)
  paso-board record list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	records, err := cliInstance.App.Repo().GetRecords(ctx)
	if err != nil {
		return formatter.Fail("RECORD_FETCH_ERROR", err)
	}

	views := make([]cli.RecordView, len(records))
	for i, r := range records {
		views[i] = cli.NewRecordView(r)
	}

	if formatter.Quiet {
		for _, v := range views {
			if err := formatter.Success(v); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(views)
	}

	if len(views) == 0 {
		formatter.Printf("No records found\n")
		return nil
	}

	rows := make([][]string, len(views))
	for i, v := range views {
		rows[i] = []string{v.ID, v.Summary()}
	}
	formatter.Table([]string{"ID", "Fields"}, rows)
	return nil
}
