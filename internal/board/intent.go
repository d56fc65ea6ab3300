package board

import "github.com/thenoetrevino/paso-board/internal/models"

// Intent is the resolved persistent change a completed drag should cause
type Intent interface {
	intent()
	String() string
}

// ReorderColumns persists a new column display order
type ReorderColumns struct {
	Order []string
}

// MoveCard assigns the target column's key to the backing field.
// An absent Value (drop on the no-value column) deletes the field instead.
type MoveCard struct {
	RecordID string
	Field    string
	Column   string
	Value    models.Value
}

// Deletes reports whether the move removes the backing field
func (m MoveCard) Deletes() bool {
	return m.Value.IsAbsent()
}

// ReorderCards renumbers a column after moving one card to Index
type ReorderCards struct {
	Column   string
	RecordID string
	Index    int
}

// NoOp means the drop changed nothing
type NoOp struct{}

// Rejected means the drop cannot be honoured. Silent rejections are not
// reported to the user.
type Rejected struct {
	Reason error
	Silent bool
}

func (ReorderColumns) intent() {}
func (MoveCard) intent()       {}
func (ReorderCards) intent()   {}
func (NoOp) intent()           {}
func (Rejected) intent()       {}

func (ReorderColumns) String() string { return "reorder-columns" }
func (MoveCard) String() string       { return "move-card" }
func (ReorderCards) String() string   { return "reorder-cards" }
func (NoOp) String() string           { return "no-op" }
func (Rejected) String() string       { return "rejected" }
