// Package notifications collects transient user-facing messages.
package notifications

import "sync"

// Level represents the severity of a notification
type Level int

const (
	// LevelInfo represents informational notifications
	LevelInfo Level = iota
	// LevelWarning represents reduced-capability notices (e.g. drops disabled)
	LevelWarning
	// LevelError represents failed mutations
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a single message with a severity level
type Notification struct {
	Level   Level
	Message string
}

// State holds the notifications waiting to be shown.
// Bulk mutations report failures from worker goroutines, so access is locked.
type State struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewState creates an empty notification state
func NewState() *State {
	return &State{notifications: []Notification{}}
}

// Add appends a notification
func (s *State) Add(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
}

// Clear removes all notifications
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = []Notification{}
}

// ClearLevel removes all notifications of a specific level
func (s *State) ClearLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := []Notification{}
	for _, n := range s.notifications {
		if n.Level != level {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// All returns a copy of the current notifications
func (s *State) All() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// Drain returns all notifications and clears them
func (s *State) Drain() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notifications
	s.notifications = []Notification{}
	return out
}

// HasAny returns true if there are any notifications
func (s *State) HasAny() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notifications) > 0
}
