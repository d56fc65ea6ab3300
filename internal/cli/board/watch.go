package board

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/paso-board/internal/app"
	engine "github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/cli"
	"github.com/thenoetrevino/paso-board/internal/database"
	"github.com/thenoetrevino/paso-board/internal/events"
	"github.com/thenoetrevino/paso-board/internal/watch"
)

// WatchCmd returns the board watch subcommand
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the board every time it changes",
		Long: `Print the board, then print it again whenever the database changes,
including writes from other paso-board processes. With --json every
snapshot is one JSON line.

Examples:
  paso-board board watch --sort order
  paso-board board watch --json --for 10m
`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}

	cmd.Flags().Duration("for", 0, "Stop after this long (default: until interrupted)")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if d, _ := cmd.Flags().GetDuration("for"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	cmd.SetContext(ctx)

	var view string
	printBoard := func(snap *engine.Snapshot) {
		if err := printSnapshot(formatter, view, snap); err != nil {
			stop()
		}
	}

	cliInstance, done, err := load(cmd, formatter, app.WithRefreshHook(printBoard))
	if err != nil {
		return err
	}
	defer done()
	view = cliInstance.App.View()
	// The first load ran before the view name was known
	if err := printSnapshot(formatter, view, cliInstance.App.Board.Snapshot()); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return cliInstance.App.Board.Watch(gctx, cliInstance.App.Events())
	})
	if path, ok := watchedPath(cmd); ok {
		g.Go(func() error {
			return watch.Database(gctx, path, view, cliInstance.App.Events(), watch.DefaultDebounce)
		})
	}

	err = g.Wait()
	if broker, ok := cliInstance.App.Events().(*events.Broker); ok {
		slog.Info("watch stopped", "view", view, "events", broker.Metrics().GetSnapshot())
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return formatter.Fail("WATCH_ERROR", err)
	}
	return nil
}

// printSnapshot prints one snapshot; nothing is printed before the view is known
func printSnapshot(formatter *cli.OutputFormatter, view string, snap *engine.Snapshot) error {
	if view == "" || snap == nil {
		return nil
	}
	bv := cli.NewBoardView(view, snap)
	if formatter.JSON {
		return formatter.Success(bv)
	}
	if formatter.Quiet {
		return nil
	}

	formatter.Printf("%s  %s\n", time.Now().Format(time.TimeOnly), view)
	header, rows := cardGrid(snap)
	formatter.Table(header, rows)
	return nil
}

// watchedPath is the database file to watch for outside writes. There is
// none for in-memory and injected databases.
func watchedPath(cmd *cobra.Command) (string, bool) {
	if _, injected := cmd.Context().Value(cli.RepoKey).(*database.Repository); injected {
		return "", false
	}
	cfg, err := cli.LoadConfig(cmd)
	if err != nil || cfg.Board.Database == database.MemoryPath {
		return "", false
	}
	if cfg.Board.Database != "" {
		return cfg.Board.Database, true
	}
	path, err := database.DefaultPath()
	return path, err == nil
}
