package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks broker statistics using atomic operations for thread-safety
type Metrics struct {
	EventsSent      atomic.Int64
	EventsDelivered atomic.Int64
	EventsDropped   atomic.Int64
	Listeners       atomic.Int32
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	EventsSent      int64     `json:"events_sent"`
	EventsDelivered int64     `json:"events_delivered"`
	EventsDropped   int64     `json:"events_dropped"`
	Listeners       int32     `json:"listeners"`
	StartTime       time.Time `json:"start_time"`
	Uptime          string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsSent:      m.EventsSent.Load(),
		EventsDelivered: m.EventsDelivered.Load(),
		EventsDropped:   m.EventsDropped.Load(),
		Listeners:       m.Listeners.Load(),
		StartTime:       m.StartTime,
		Uptime:          time.Since(m.StartTime).String(),
	}
}
