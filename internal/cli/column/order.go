package column

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
	columnservice "github.com/thenoetrevino/paso-board/internal/services/column"
)

// GetCmd returns the column order get subcommand
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the stored column order",
		Long: `Print the stored column order of the view.

With --prune, names of columns that are no longer on the board are
removed from the stored order.

Examples:
  paso-board column order get
  paso-board column order get --view roadmap --prune --json
`,
		Args: cobra.NoArgs,
		RunE: runGet,
	}

	cmd.Flags().Bool("prune", false, "Drop names of columns no longer on the board")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	a := cliInstance.App
	v := OrderView{View: a.View(), Order: a.ColumnService.GetOrder(ctx)}

	if cli.FlagBool(cmd, "prune") && len(v.Order) > 0 {
		if err := a.Board.Refresh(ctx); err != nil {
			return formatter.Fail("BOARD_LOAD_ERROR", err)
		}
		kept := columnservice.Prune(v.Order, a.Board.Snapshot().ColumnNames())
		for _, name := range v.Order {
			if !slices.Contains(kept, name) {
				v.Pruned = append(v.Pruned, name)
			}
		}
		if len(v.Pruned) > 0 {
			if err := a.ColumnService.SetOrder(ctx, kept); err != nil {
				return formatter.Fail("ORDER_SAVE_ERROR", err)
			}
		}
		v.Order = kept
	}

	return printOrder(formatter, v)
}

// SetCmd returns the column order set subcommand
func SetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <column>...",
		Short: "Store a column order",
		Long: `Store the display order of the view's columns. Names may not contain
commas; use "(No value)" for the column of records without a value.

Examples:
  paso-board column order set Done Todo "(No value)"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	a := cliInstance.App
	if err := a.ColumnService.SetOrder(ctx, args); err != nil {
		return formatter.Fail("ORDER_SAVE_ERROR", err)
	}
	return printOrder(formatter, OrderView{View: a.View(), Order: a.ColumnService.GetOrder(ctx)})
}

// ResetCmd returns the column order reset subcommand
func ResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the stored column order",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	a := cliInstance.App
	if err := a.ColumnService.ResetOrder(ctx); err != nil {
		return formatter.Fail("ORDER_SAVE_ERROR", err)
	}
	if formatter.JSON {
		return formatter.Success(OrderView{View: a.View(), Order: []string{}})
	}
	formatter.Printf("✓ Column order reset for view '%s'\n", a.View())
	return nil
}
