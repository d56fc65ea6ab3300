package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/notifications"
)

// FieldView is the JSON form of a record field
type FieldView struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// RecordView is the JSON form of a record
type RecordView struct {
	ID     string      `json:"id"`
	Fields []FieldView `json:"fields"`
}

// GetID returns the record ID for quiet output
func (r RecordView) GetID() string {
	return r.ID
}

// NewRecordView converts a record for output
func NewRecordView(r *models.Record) RecordView {
	v := RecordView{ID: r.ID, Fields: make([]FieldView, len(r.Fields))}
	for i, f := range r.Fields {
		v.Fields[i] = FieldView{Name: f.Name, Kind: f.Value.Kind().String(), Value: models.Canonical(f.Value)}
	}
	return v
}

// Summary renders fields as name=value pairs
func (r RecordView) Summary() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Name + "=" + f.Value
	}
	return strings.Join(parts, " ")
}

// ColumnView is the JSON form of a board column
type ColumnView struct {
	Name    string   `json:"name"`
	Key     string   `json:"key"`
	NoValue bool     `json:"no_value,omitempty"`
	Records []string `json:"records"`
}

// BoardView is the JSON form of a snapshot
type BoardView struct {
	View          string             `json:"view"`
	BackingField  string             `json:"backing_field,omitempty"`
	SortField     string             `json:"sort_field,omitempty"`
	Descending    bool               `json:"descending,omitempty"`
	Columns       []ColumnView       `json:"columns"`
	Notifications []NotificationView `json:"notifications,omitempty"`
}

// NewBoardView converts a snapshot for output
func NewBoardView(view string, snap *board.Snapshot) BoardView {
	v := BoardView{View: view, Columns: make([]ColumnView, len(snap.Columns))}
	if snap.HasBackingField {
		v.BackingField = snap.BackingField
	}
	if snap.HasSortField {
		v.SortField = snap.SortField.Name
		v.Descending = snap.SortField.Descending
	}
	for i, c := range snap.Columns {
		v.Columns[i] = ColumnView{
			Name:    c.Name,
			Key:     models.Canonical(c.Key),
			NoValue: c.IsNoValue(),
			Records: models.RecordIDs(c.Records),
		}
	}
	return v
}

// NotificationView is the JSON form of a notification
type NotificationView struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// DrainNotifications empties the state into views
func DrainNotifications(state *notifications.State) []NotificationView {
	drained := state.Drain()
	views := make([]NotificationView, len(drained))
	for i, n := range drained {
		views[i] = NotificationView{Level: n.Level.String(), Message: n.Message}
	}
	return views
}

// AssignmentView is one renumbered record
type AssignmentView struct {
	RecordID string `json:"record_id"`
	Value    int    `json:"value"`
}

// FailureView is one failed mutation
type FailureView struct {
	RecordID string `json:"record_id"`
	Error    string `json:"error"`
}

// OutcomeView is the JSON form of an executed drop
type OutcomeView struct {
	Intent        string             `json:"intent"`
	RecordID      string             `json:"record_id,omitempty"`
	Column        string             `json:"column,omitempty"`
	Field         string             `json:"field,omitempty"`
	Value         string             `json:"value,omitempty"`
	Deleted       bool               `json:"deleted,omitempty"`
	Index         int                `json:"index,omitempty"`
	Order         []string           `json:"order,omitempty"`
	Assignments   []AssignmentView   `json:"assignments,omitempty"`
	Failed        []FailureView      `json:"failed,omitempty"`
	Reason        string             `json:"reason,omitempty"`
	Notifications []NotificationView `json:"notifications,omitempty"`
}

// NewOutcomeView converts an outcome for output
func NewOutcomeView(out board.Outcome) OutcomeView {
	v := OutcomeView{Intent: "no-op"}
	if out.Intent != nil {
		v.Intent = out.Intent.String()
	}
	switch it := out.Intent.(type) {
	case board.ReorderColumns:
		v.Order = it.Order
	case board.MoveCard:
		v.RecordID, v.Column, v.Field = it.RecordID, it.Column, it.Field
		v.Value = models.Canonical(it.Value)
		v.Deleted = it.Deletes()
	case board.ReorderCards:
		v.RecordID, v.Column, v.Index = it.RecordID, it.Column, it.Index
	case board.Rejected:
		v.Reason = it.Reason.Error()
	}
	for _, a := range out.Assignments {
		v.Assignments = append(v.Assignments, AssignmentView{RecordID: a.RecordID, Value: a.Value})
	}
	for _, f := range out.Batch.Failed {
		v.Failed = append(v.Failed, FailureView{RecordID: f.RecordID, Error: f.Err.Error()})
	}
	return v
}

// Describe renders the outcome as one human-readable line
func (v OutcomeView) Describe() string {
	switch v.Intent {
	case "reorder-columns":
		return fmt.Sprintf("✓ Column order saved: %s", strings.Join(v.Order, ", "))
	case "move-card":
		if v.Deleted {
			return fmt.Sprintf("✓ %s moved to %s (%s removed)", v.RecordID, v.Column, v.Field)
		}
		return fmt.Sprintf("✓ %s moved to %s (%s = %s)", v.RecordID, v.Column, v.Field, v.Value)
	case "reorder-cards":
		return fmt.Sprintf("✓ %s moved to position %d in %s (%d records renumbered)",
			v.RecordID, v.Index+1, v.Column, len(v.Assignments)-len(v.Failed))
	case "rejected":
		return fmt.Sprintf("✗ Drop rejected: %s", v.Reason)
	default:
		return "Nothing changed"
	}
}
