// Package drag tracks a single pointer-drag gesture over the board.
//
// The manager is a two-state machine. Idle becomes Dragging once a pointer
// that went down on a draggable element has travelled past the threshold.
// Dragging ends on drop or cancel. Only the insertion point is tracked while
// dragging; nothing persistent happens until Drop hands the session back.
package drag

import (
	"log/slog"
	"math"
)

// DefaultThreshold is the pointer travel needed before a press becomes a drag
const DefaultThreshold = 5.0

// Manager owns at most one drag session
type Manager struct {
	threshold float64

	state   State
	armed   bool
	origin  Point
	session Session
	target  Target
}

// NewManager creates an idle manager. A non-positive threshold uses DefaultThreshold.
func NewManager(threshold float64) *Manager {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Manager{threshold: threshold}
}

// State returns the current state
func (m *Manager) State() State {
	return m.state
}

// Active reports whether a drag is armed or in progress
func (m *Manager) Active() bool {
	return m.armed || m.state == Dragging
}

// Session returns the current session and whether one exists
func (m *Manager) Session() (Session, bool) {
	if !m.Active() {
		return Session{}, false
	}
	return m.session, true
}

// Target returns the live insertion point
func (m *Manager) Target() Target {
	return m.target
}

// PointerDown arms a drag on a draggable element. The drag starts on the
// first Move beyond the threshold.
func (m *Manager) PointerDown(s Session, at Point) error {
	if m.Active() {
		return ErrDragActive
	}
	if s.SourceID == "" {
		return ErrInvalidSource
	}
	m.armed = true
	m.origin = at
	m.session = s
	m.target = Target{}
	return nil
}

// Start begins a drag immediately, without pointer travel.
// Keyboard and scripted gestures use this.
func (m *Manager) Start(s Session) error {
	if m.Active() {
		return ErrDragActive
	}
	if s.SourceID == "" {
		return ErrInvalidSource
	}
	m.begin(s)
	return nil
}

func (m *Manager) begin(s Session) {
	m.armed = false
	m.state = Dragging
	m.session = s
	m.target = Target{Column: s.SourceColumn, Index: s.SourceIndex, Valid: true}
	slog.Debug("drag started", "kind", s.Kind, "source", s.SourceID, "column", s.SourceColumn, "index", s.SourceIndex)
}

// Move updates the insertion point for the pointer position over surface.
func (m *Manager) Move(at Point, surface Surface) (Target, error) {
	if !m.Active() {
		return Target{}, ErrNoDrag
	}
	if m.armed {
		if math.Hypot(at.X-m.origin.X, at.Y-m.origin.Y) < m.threshold {
			return m.target, nil
		}
		m.begin(m.session)
	}

	if !surface.valid {
		m.target = Target{}
		return m.target, nil
	}

	m.target = Target{
		Column: surface.Column,
		Index:  m.insertionIndex(at, surface.Siblings),
		Valid:  true,
	}
	return m.target, nil
}

// insertionIndex finds the first sibling whose midpoint lies past the
// pointer along the drag axis. The dragged element itself is skipped, so the
// index is the element's final position.
func (m *Manager) insertionIndex(at Point, siblings []Sibling) int {
	idx := 0
	for _, sib := range siblings {
		if sib.ID == m.session.SourceID {
			continue
		}
		mid := sib.Bounds.Mid()
		if m.session.Kind == KindColumn {
			if mid.X > at.X {
				return idx
			}
		} else if mid.Y > at.Y {
			return idx
		}
		idx++
	}
	return idx
}

// MoveTo sets the insertion point directly (keyboard and scripted drags)
func (m *Manager) MoveTo(column string, index int) (Target, error) {
	if m.state != Dragging {
		return Target{}, ErrNoDrag
	}
	m.target = Target{Column: column, Index: max(index, 0), Valid: true}
	return m.target, nil
}

// Drop ends the drag and returns the session with its final target.
// A drop without a valid target, or before the drag started, is a cancel.
func (m *Manager) Drop() (Session, Target, error) {
	if !m.Active() {
		return Session{}, Target{}, ErrNoDrag
	}
	s, t, started := m.session, m.target, m.state == Dragging
	m.Reset()

	if !started || !t.Valid {
		slog.Debug("drag cancelled on drop", "source", s.SourceID)
		return s, t, ErrNoDrop
	}
	slog.Debug("drag dropped", "kind", s.Kind, "source", s.SourceID, "column", t.Column, "index", t.Index)
	return s, t, nil
}

// Cancel abandons the drag without side effects
func (m *Manager) Cancel() {
	if m.Active() {
		slog.Debug("drag cancelled", "source", m.session.SourceID)
	}
	m.Reset()
}

// Reset returns the manager to Idle, discarding any session
func (m *Manager) Reset() {
	m.state = Idle
	m.armed = false
	m.origin = Point{}
	m.session = Session{}
	m.target = Target{}
}
