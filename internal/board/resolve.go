package board

import (
	"fmt"

	"github.com/thenoetrevino/paso-board/internal/drag"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/services/column"
)

// Resolve classifies a completed drag against the snapshot it started on.
func Resolve(s drag.Session, t drag.Target, snap *Snapshot) Intent {
	if snap == nil {
		return Rejected{Reason: ErrNoSnapshot}
	}
	if s.Kind == drag.KindColumn {
		return resolveColumn(s, t, snap)
	}
	return resolveCard(s, t, snap)
}

func resolveColumn(s drag.Session, t drag.Target, snap *Snapshot) Intent {
	order, ok := column.Move(snap.ColumnNames(), s.SourceID, t.Index)
	if !ok {
		return Rejected{Reason: fmt.Errorf("%w: %s", models.ErrUnknownColumn, s.SourceID)}
	}
	return ReorderColumns{Order: order}
}

func resolveCard(s drag.Session, t drag.Target, snap *Snapshot) Intent {
	src, ok := snap.Column(s.SourceColumn)
	if !ok {
		return Rejected{Reason: fmt.Errorf("%w: %s", models.ErrUnknownColumn, s.SourceColumn)}
	}
	if src.IndexOf(s.SourceID) < 0 {
		return Rejected{Reason: fmt.Errorf("%w: %s", models.ErrUnknownRecord, s.SourceID)}
	}
	dst, ok := snap.Column(t.Column)
	if !ok {
		return Rejected{Reason: fmt.Errorf("%w: %s", models.ErrUnknownColumn, t.Column)}
	}

	if dst.Name != src.Name {
		if !snap.HasBackingField {
			return Rejected{Reason: models.ErrNoBackingField}
		}
		return MoveCard{
			RecordID: s.SourceID,
			Field:    snap.BackingField,
			Column:   dst.Name,
			Value:    dst.Key,
		}
	}

	if t.Index == s.SourceIndex {
		return NoOp{}
	}
	if !snap.HasSortField {
		// Without a sort field there is nowhere to persist a manual order
		return Rejected{Reason: models.ErrNoSortField, Silent: true}
	}
	return ReorderCards{Column: src.Name, RecordID: s.SourceID, Index: t.Index}
}
