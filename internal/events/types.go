package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventDataChanged means records or view configuration changed and groups must be re-read
	EventDataChanged EventType = "data_changed"
)

// Event is a refresh notification
type Event struct {
	Type       EventType
	View       string    // View the change applies to; empty for all views
	Timestamp  time.Time // When the event was published
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
