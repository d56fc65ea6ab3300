package board

import (
	"math"

	"github.com/thenoetrevino/paso-board/internal/drag"
)

// Layout is the geometry of a rendered board: columns side by side, each a
// header above a stack of equally sized cards. Hosts that paint the board
// supply real bounds; scripted gestures use this model.
type Layout struct {
	ColumnWidth  float64
	HeaderHeight float64
	CardHeight   float64
}

// DefaultLayout is the geometry used for scripted drags
func DefaultLayout() Layout {
	return Layout{ColumnWidth: 200, HeaderHeight: 40, CardHeight: 40}
}

// HeaderBounds returns the bounds of the header of column col
func (l Layout) HeaderBounds(col int) drag.Rect {
	return drag.Rect{X: float64(col) * l.ColumnWidth, Y: 0, W: l.ColumnWidth, H: l.HeaderHeight}
}

// CardBounds returns the bounds of card idx in column col
func (l Layout) CardBounds(col, idx int) drag.Rect {
	return drag.Rect{
		X: float64(col) * l.ColumnWidth,
		Y: l.HeaderHeight + float64(idx)*l.CardHeight,
		W: l.ColumnWidth,
		H: l.CardHeight,
	}
}

// Origin returns where a pointer goes down to pick up the session's source.
// ok is false when the source is not on the board.
func (l Layout) Origin(snap *Snapshot, s drag.Session) (drag.Point, bool) {
	if s.Kind == drag.KindColumn {
		col := snap.ColumnIndex(s.SourceID)
		if col < 0 {
			return drag.Point{}, false
		}
		return l.HeaderBounds(col).Mid(), true
	}
	col := snap.ColumnIndex(s.SourceColumn)
	if col < 0 {
		return drag.Point{}, false
	}
	return l.CardBounds(col, s.SourceIndex).Mid(), true
}

// Surface returns the drop surface under the pointer. Points left of the
// board, right of the last column or above it hit no surface.
func (l Layout) Surface(snap *Snapshot, kind drag.Kind, at drag.Point) drag.Surface {
	if at.X < 0 || at.Y < 0 || l.ColumnWidth <= 0 {
		return drag.Surface{}
	}
	col := int(math.Floor(at.X / l.ColumnWidth))
	if col >= len(snap.Columns) {
		return drag.Surface{}
	}

	if kind == drag.KindColumn {
		headers := make([]drag.Sibling, len(snap.Columns))
		for i, c := range snap.Columns {
			headers[i] = drag.Sibling{ID: c.Name, Bounds: l.HeaderBounds(i)}
		}
		return drag.NewSurface("", headers)
	}

	c := snap.Columns[col]
	cards := make([]drag.Sibling, len(c.Records))
	for i, r := range c.Records {
		cards[i] = drag.Sibling{ID: r.ID, Bounds: l.CardBounds(col, i)}
	}
	return drag.NewSurface(c.Name, cards)
}
