package board

import (
	"fmt"

	"github.com/spf13/cobra"

	engine "github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/cli"
	"github.com/thenoetrevino/paso-board/internal/drag"
	"github.com/thenoetrevino/paso-board/internal/models"
)

// DragCmd returns the board drag subcommand
func DragCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drag <source>",
		Short: "Replay a pointer drag over the board",
		Long: `Replay a pointer gesture over the default board layout: columns are
200 wide, headers and cards 40 high. The pointer goes down on the source,
visits every --to point and is released at the last one.

Short gestures that never leave the drag threshold, and releases outside
the board, change nothing.

Examples:
  # Drag card a.md into the second column, below its first card
  paso-board board drag a.md --to 300,70 --sort order

  # Drag the first column past the second header
  paso-board board drag Todo --column --to 310,20
`,
		Args: cobra.ExactArgs(1),
		RunE: runDrag,
	}

	cmd.Flags().Bool("column", false, "Drag a column header instead of a card")
	cmd.Flags().StringArray("to", nil, "Pointer position as x,y; repeatable, in order")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runDrag(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	rawPoints, _ := cmd.Flags().GetStringArray("to")
	points := make([]drag.Point, len(rawPoints))
	for i, raw := range rawPoints {
		p, err := cli.ParsePoint(raw)
		if err != nil {
			return formatter.Fail("INVALID_POINT", err)
		}
		points[i] = p
	}

	cliInstance, done, err := load(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	b := cliInstance.App.Board
	snap := b.Snapshot()
	session, err := sessionFor(snap, args[0], cli.FlagBool(cmd, "column"))
	if err != nil {
		return formatter.Fail("SOURCE_NOT_ON_BOARD", err)
	}

	layout := engine.DefaultLayout()
	origin, ok := layout.Origin(snap, session)
	if !ok {
		return formatter.Fail("SOURCE_NOT_ON_BOARD", fmt.Errorf("%w: %s", models.ErrUnknownRecord, args[0]))
	}
	if err := b.Drag().PointerDown(session, origin); err != nil {
		return formatter.Fail("DRAG_ERROR", err)
	}
	for _, at := range points {
		if _, err := b.Drag().Move(at, layout.Surface(snap, session.Kind, at)); err != nil {
			b.Drag().Cancel()
			return formatter.Fail("DRAG_ERROR", err)
		}
	}

	out, err := b.Drop(ctx)
	return report(formatter, cliInstance, out, err)
}

// sessionFor picks up a card, or a column header when isColumn is set
func sessionFor(snap *engine.Snapshot, source string, isColumn bool) (drag.Session, error) {
	if isColumn {
		idx := snap.ColumnIndex(source)
		if idx < 0 {
			return drag.Session{}, fmt.Errorf("%w: %s", models.ErrUnknownColumn, source)
		}
		return drag.Session{Kind: drag.KindColumn, SourceID: source, SourceIndex: idx}, nil
	}

	col, idx, ok := snap.Locate(source)
	if !ok {
		return drag.Session{}, fmt.Errorf("%w: %s", models.ErrUnknownRecord, source)
	}
	return drag.Session{Kind: drag.KindCard, SourceID: source, SourceColumn: col.Name, SourceIndex: idx}, nil
}
