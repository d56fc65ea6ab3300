// Package column holds the commands that manage the persisted column order
package column

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage board columns",
	}

	cmd.AddCommand(OrderCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// OrderCmd returns the column order command group
func OrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Read or change the stored column order of a view",
		Long: `The column order is stored per view as a comma separated list of
column names. Columns missing from it are shown after the listed ones in
their natural order.`,
	}

	cmd.AddCommand(GetCmd())
	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}

// OrderView is the JSON form of a stored column order
type OrderView struct {
	View   string   `json:"view"`
	Order  []string `json:"order"`
	Pruned []string `json:"pruned,omitempty"`
}

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

func printOrder(formatter *cli.OutputFormatter, v OrderView) error {
	if formatter.JSON {
		return formatter.Success(v)
	}
	if formatter.Quiet {
		for _, name := range v.Order {
			if _, err := fmt.Fprintln(formatter.Out, name); err != nil {
				return err
			}
		}
		return nil
	}

	if len(v.Order) == 0 {
		formatter.Printf("No column order stored for view '%s'\n", v.View)
	} else {
		rows := make([][]string, len(v.Order))
		for i, name := range v.Order {
			rows[i] = []string{strconv.Itoa(i + 1), name}
		}
		formatter.Table([]string{"#", "Column"}, rows)
	}
	for _, name := range v.Pruned {
		formatter.Printf("  pruned: %s\n", name)
	}
	return nil
}
