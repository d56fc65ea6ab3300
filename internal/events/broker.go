package events

import (
	"context"
	"sync"
	"time"
)

// listenerBuffer is the per-listener queue size
const listenerBuffer = 16

// Broker fans refresh events out to in-process listeners.
// Sends never block: a listener whose queue is full misses the event, which
// is harmless because any later event triggers the same full re-read.
type Broker struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	sequence  int64
	closed    bool
	done      chan struct{}
	metrics   *Metrics
}

// NewBroker creates an empty broker
func NewBroker() *Broker {
	return &Broker{
		listeners: make(map[int]chan Event),
		done:      make(chan struct{}),
		metrics:   NewMetrics(),
	}
}

// Metrics returns the broker's delivery counters
func (b *Broker) Metrics() *Metrics {
	return b.metrics
}

// SendEvent stamps the event and delivers it to every listener.
// Listeners with a full queue are skipped and counted in EventsDropped;
// that is not an error.
func (b *Broker) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	b.sequence++
	b.metrics.EventsSent.Add(1)
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for _, ch := range b.listeners {
		select {
		case ch <- event:
			b.metrics.EventsDelivered.Add(1)
		default:
			b.metrics.EventsDropped.Add(1)
		}
	}
	return nil
}

// Listen registers a listener until ctx is done
func (b *Broker) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Event, listenerBuffer)
	b.listeners[id] = ch
	b.metrics.Listeners.Store(int32(len(b.listeners)))

	go func() {
		select {
		case <-ctx.Done():
			b.remove(id)
		case <-b.done:
		}
	}()

	return ch, nil
}

func (b *Broker) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.listeners[id]; ok {
		delete(b.listeners, id)
		close(ch)
		b.metrics.Listeners.Store(int32(len(b.listeners)))
	}
}

// Close closes every listener channel. Further sends fail with ErrClosed.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	for id, ch := range b.listeners {
		delete(b.listeners, id)
		close(ch)
	}
	b.metrics.Listeners.Store(0)
	return nil
}
