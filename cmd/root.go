package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
	"github.com/thenoetrevino/paso-board/internal/cli/board"
	"github.com/thenoetrevino/paso-board/internal/cli/column"
	"github.com/thenoetrevino/paso-board/internal/cli/record"
	"github.com/thenoetrevino/paso-board/internal/logging"
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "paso-board",
	Short: "Paso Board - drag-and-drop kanban over frontmatter records",
	Long: `Paso Board groups records by a frontmatter property into columns and
turns drags into record edits: moving a card between columns rewrites the
grouped field, reordering cards renumbers the sort field and reordering
columns is stored per view.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return cli.NewFormatter(cmd).Fail("CONFIG_ERROR", cli.Exit(cli.ExitUsage, fmt.Errorf("failed to load config: %w", err)))
		}
		closer, err := logging.Init(cfg.Logging.Path, cfg.Logging.Level)
		if err != nil {
			// Logging is best effort; commands still run
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ logging disabled: %v\n", err)
			return nil
		}
		logCloser = closer
		slog.Debug("command started", "command", cmd.CommandPath())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

func init() {
	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(record.RecordCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
