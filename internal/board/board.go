// Package board reconciles drag-and-drop gestures with the host record store.
//
// A Board holds the latest Snapshot, the drag manager and the services that
// turn resolved intents into mutation requests. It is driven from a single
// UI goroutine; only Refresh may run concurrently, since it just swaps the
// immutable snapshot.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/thenoetrevino/paso-board/internal/drag"
	"github.com/thenoetrevino/paso-board/internal/events"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/notifications"
	"github.com/thenoetrevino/paso-board/internal/renumber"
	"github.com/thenoetrevino/paso-board/internal/services/column"
	"github.com/thenoetrevino/paso-board/internal/services/mutation"
)

// Source is the external grouping engine
type Source interface {
	ReadGroups(ctx context.Context) (Refresh, error)
}

// Outcome describes what executing an intent did
type Outcome struct {
	Intent      Intent
	Assignments []renumber.Assignment // ReorderCards only
	Batch       mutation.BatchResult  // ReorderCards only
}

// Board is the drag-and-drop reconciliation engine for one view
type Board struct {
	source    Source
	columns   column.Service
	mutations mutation.Service
	drag      *drag.Manager
	notes     *notifications.State

	snapshot atomic.Pointer[Snapshot]
	onLoad   func(*Snapshot)
	warned   atomic.Bool
}

// Option configures a Board
type Option func(*Board)

// WithDragManager replaces the default drag manager
func WithDragManager(m *drag.Manager) Option {
	return func(b *Board) { b.drag = m }
}

// WithNotifications sets where user-facing messages go
func WithNotifications(n *notifications.State) Option {
	return func(b *Board) { b.notes = n }
}

// WithRefreshHook is called with every new snapshot (e.g. to repaint)
func WithRefreshHook(fn func(*Snapshot)) Option {
	return func(b *Board) { b.onLoad = fn }
}

// New creates a board. source may be nil when refreshes are pushed with Load.
func New(source Source, columns column.Service, mutations mutation.Service, opts ...Option) *Board {
	b := &Board{
		source:    source,
		columns:   columns,
		mutations: mutations,
		drag:      drag.NewManager(drag.DefaultThreshold),
		notes:     notifications.NewState(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Drag returns the drag manager fed by pointer events
func (b *Board) Drag() *drag.Manager {
	return b.drag
}

// Notifications returns pending user-facing messages
func (b *Board) Notifications() *notifications.State {
	return b.notes
}

// Snapshot returns the current snapshot, or nil before the first load
func (b *Board) Snapshot() *Snapshot {
	return b.snapshot.Load()
}

// Refresh re-reads the source and rebuilds the snapshot
func (b *Board) Refresh(ctx context.Context) error {
	if b.source == nil {
		return nil
	}
	r, err := b.source.ReadGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to read groups: %w", err)
	}
	b.Load(ctx, r)
	return nil
}

// Load builds a snapshot from a pushed refresh
func (b *Board) Load(ctx context.Context, r Refresh) *Snapshot {
	snap := NewSnapshot(r, b.columns.GetOrder(ctx))
	b.snapshot.Store(snap)

	if !snap.HasBackingField && len(snap.Columns) > 1 {
		if !b.warned.Swap(true) {
			b.notes.Add(notifications.LevelWarning,
				"Cards cannot be moved between columns: the field this board is grouped by could not be determined.")
		}
	} else {
		b.warned.Store(false)
	}

	slog.Debug("board loaded",
		"columns", len(snap.Columns),
		"backing_field", snap.BackingField,
		"sort_field", snap.SortField.Name)

	if b.onLoad != nil {
		b.onLoad(snap)
	}
	return snap
}

// Watch refreshes the board on every event until ctx ends
func (b *Board) Watch(ctx context.Context, pub events.EventPublisher) error {
	ch, err := pub.Listen(ctx)
	if err != nil {
		return fmt.Errorf("failed to listen for refresh events: %w", err)
	}
	for ev := range ch {
		if err := b.Refresh(ctx); err != nil {
			slog.Error("refresh failed", "sequence", ev.SequenceID, "error", err)
		}
	}
	return ctx.Err()
}

// Drop ends the active drag and executes whatever it resolves to.
// A drag released outside any drop target is a cancel and yields NoOp.
func (b *Board) Drop(ctx context.Context) (Outcome, error) {
	s, t, err := b.drag.Drop()
	if errors.Is(err, drag.ErrNoDrop) {
		return Outcome{Intent: NoOp{}}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	return b.Execute(ctx, Resolve(s, t, b.Snapshot()))
}

// MoveCard performs a complete card drag without pointer input.
// index is the card's final position in the target column.
func (b *Board) MoveCard(ctx context.Context, recordID, toColumn string, index int) (Outcome, error) {
	snap := b.Snapshot()
	if snap == nil {
		return Outcome{}, ErrNoSnapshot
	}
	src, from, ok := snap.Locate(recordID)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", models.ErrUnknownRecord, recordID)
	}
	if err := b.drag.Start(drag.Session{
		Kind:         drag.KindCard,
		SourceID:     recordID,
		SourceColumn: src.Name,
		SourceIndex:  from,
	}); err != nil {
		return Outcome{}, err
	}
	if _, err := b.drag.MoveTo(toColumn, index); err != nil {
		b.drag.Cancel()
		return Outcome{}, err
	}
	return b.Drop(ctx)
}

// MoveColumn performs a complete column drag without pointer input
func (b *Board) MoveColumn(ctx context.Context, name string, index int) (Outcome, error) {
	snap := b.Snapshot()
	if snap == nil {
		return Outcome{}, ErrNoSnapshot
	}
	from := snap.ColumnIndex(name)
	if from < 0 {
		return Outcome{}, fmt.Errorf("%w: %s", models.ErrUnknownColumn, name)
	}
	if err := b.drag.Start(drag.Session{Kind: drag.KindColumn, SourceID: name, SourceIndex: from}); err != nil {
		return Outcome{}, err
	}
	if _, err := b.drag.MoveTo("", index); err != nil {
		b.drag.Cancel()
		return Outcome{}, err
	}
	return b.Drop(ctx)
}

// Execute hands an intent to the mutation services.
// Failures are reported as notifications; nothing is rolled back, the next
// refresh shows the true state.
func (b *Board) Execute(ctx context.Context, in Intent) (Outcome, error) {
	out := Outcome{Intent: in}

	switch it := in.(type) {
	case ReorderColumns:
		if err := b.columns.SetOrder(ctx, it.Order); err != nil {
			b.notes.Add(notifications.LevelError, "Failed to save column order")
			return out, err
		}
		// Order changes do not trigger a data refresh; re-sort in place
		if snap := b.Snapshot(); snap != nil {
			b.snapshot.Store(resorted(snap, it.Order))
		}

	case MoveCard:
		var err error
		if it.Deletes() {
			err = b.mutations.DeleteField(ctx, it.RecordID, it.Field)
		} else {
			err = b.mutations.SetField(ctx, it.RecordID, it.Field, it.Value)
		}
		if err != nil {
			slog.Error("failed to move card", "record", it.RecordID, "column", it.Column, "error", err)
			b.notes.Add(notifications.LevelError, fmt.Sprintf("Failed to move %s to %s", it.RecordID, it.Column))
			return out, err
		}

	case ReorderCards:
		return b.reorderCards(ctx, it)

	case Rejected:
		if !it.Silent {
			b.notes.Add(notifications.LevelWarning, it.Reason.Error())
		}
		slog.Debug("drop rejected", "reason", it.Reason, "silent", it.Silent)

	case NoOp:
	}

	return out, nil
}

func (b *Board) reorderCards(ctx context.Context, it ReorderCards) (Outcome, error) {
	out := Outcome{Intent: it}
	snap := b.Snapshot()
	if snap == nil || !snap.HasSortField {
		return out, models.ErrNoSortField
	}
	col, ok := snap.Column(it.Column)
	if !ok {
		return out, fmt.Errorf("%w: %s", models.ErrUnknownColumn, it.Column)
	}
	order, ok := renumber.Reorder(models.RecordIDs(col.Records), it.RecordID, it.Index)
	if !ok {
		return out, fmt.Errorf("%w: %s", models.ErrUnknownRecord, it.RecordID)
	}

	out.Assignments = renumber.Renumber(order, snap.SortField.Descending)
	values := make([]mutation.RecordValue, len(out.Assignments))
	for i, a := range out.Assignments {
		values[i] = mutation.RecordValue{RecordID: a.RecordID, Value: models.Number(float64(a.Value))}
	}

	out.Batch = b.mutations.SetFieldBulk(ctx, snap.SortField.Name, values)
	for _, f := range out.Batch.Failed {
		b.notes.Add(notifications.LevelError, fmt.Sprintf("Failed to update %s: %v", f.RecordID, f.Err))
	}
	if !out.Batch.OK() {
		return out, fmt.Errorf("%w: %d of %d", ErrBatchFailed, len(out.Batch.Failed), len(values))
	}
	return out, nil
}

// resorted copies a snapshot with its columns in a new display order
func resorted(snap *Snapshot, order []string) *Snapshot {
	cp := *snap
	cp.Columns = column.SortByOrder(order, snap.Columns)
	return &cp
}
