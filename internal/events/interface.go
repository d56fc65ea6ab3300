package events

import "context"

// EventPublisher defines the interface for sending and receiving refresh events.
type EventPublisher interface {
	// SendEvent queues an event for all listeners
	SendEvent(event Event) error

	// Listen returns a channel of events that is closed when ctx ends or the publisher closes
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes all listener channels
	Close() error
}

// Compile-time verification that *Broker implements EventPublisher
var _ EventPublisher = (*Broker)(nil)
