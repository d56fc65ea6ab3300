package mutation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/paso-board/internal/events"
	"github.com/thenoetrevino/paso-board/internal/models"
)

// DefaultConcurrency bounds the number of in-flight requests of one batch
const DefaultConcurrency = 8

// Mutator is the host store's write capability.
// The board never owns records; it only asks the host to change them.
type Mutator interface {
	SetField(ctx context.Context, recordID, name string, value models.Value) error
	DeleteField(ctx context.Context, recordID, name string) error
}

// Service defines the mutation requests the board issues
type Service interface {
	SetField(ctx context.Context, recordID, name string, value models.Value) error
	DeleteField(ctx context.Context, recordID, name string) error
	SetFieldBulk(ctx context.Context, name string, values []RecordValue) BatchResult
}

// RecordValue is one entry of a bulk set-field request
type RecordValue struct {
	RecordID string
	Value    models.Value
}

// RecordError is a failed request for one record
type RecordError struct {
	RecordID string
	Err      error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %s: %v", e.RecordID, e.Err)
}

func (e RecordError) Unwrap() error {
	return e.Err
}

// BatchResult reports the outcome of a bulk request.
// Failures never roll back sibling successes.
type BatchResult struct {
	Succeeded []string
	Failed    []RecordError
}

// OK reports whether every request succeeded
func (r BatchResult) OK() bool {
	return len(r.Failed) == 0
}

// service implements Service
type service struct {
	mutator     Mutator
	eventClient events.EventPublisher
	concurrency int
}

// NewService creates a mutation service. eventClient may be nil.
func NewService(mutator Mutator, eventClient events.EventPublisher, concurrency int) Service {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &service{
		mutator:     mutator,
		eventClient: eventClient,
		concurrency: concurrency,
	}
}

// SetField assigns a value to one record's field
func (s *service) SetField(ctx context.Context, recordID, name string, value models.Value) error {
	if err := s.validate(recordID, name); err != nil {
		return err
	}
	if err := s.mutator.SetField(ctx, recordID, name, value); err != nil {
		return fmt.Errorf("failed to set %s on %s: %w", name, recordID, err)
	}
	s.publishChange()
	return nil
}

// DeleteField removes a field from one record
func (s *service) DeleteField(ctx context.Context, recordID, name string) error {
	if err := s.validate(recordID, name); err != nil {
		return err
	}
	if err := s.mutator.DeleteField(ctx, recordID, name); err != nil {
		return fmt.Errorf("failed to delete %s on %s: %w", name, recordID, err)
	}
	s.publishChange()
	return nil
}

// SetFieldBulk issues one set-field request per record and waits for all of
// them. Requests target disjoint records and run concurrently in no
// particular order. A failure is recorded for its record only; the others
// still run.
func (s *service) SetFieldBulk(ctx context.Context, name string, values []RecordValue) BatchResult {
	var (
		mu     sync.Mutex
		result BatchResult
	)
	record := func(id string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			result.Failed = append(result.Failed, RecordError{RecordID: id, Err: err})
			return
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	if strings.TrimSpace(name) == "" {
		for _, v := range values {
			record(v.RecordID, ErrEmptyFieldName)
		}
		return result
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, v := range values {
		g.Go(func() error {
			if err := s.validate(v.RecordID, name); err != nil {
				record(v.RecordID, err)
				return nil
			}
			if err := s.mutator.SetField(ctx, v.RecordID, name, v.Value); err != nil {
				record(v.RecordID, fmt.Errorf("failed to set %s on %s: %w", name, v.RecordID, err))
				return nil
			}
			record(v.RecordID, nil)
			return nil
		})
	}
	_ = g.Wait()

	if len(result.Succeeded) > 0 {
		s.publishChange()
	}
	if !result.OK() {
		slog.Warn("bulk set-field had failures", "field", name, "failed", len(result.Failed), "succeeded", len(result.Succeeded))
	}
	return result
}

func (s *service) validate(recordID, name string) error {
	if s.mutator == nil {
		return ErrNoMutator
	}
	if strings.TrimSpace(recordID) == "" {
		return ErrInvalidRecordID
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyFieldName
	}
	return nil
}

// publishChange tells refresh listeners the record set changed
func (s *service) publishChange() {
	if s.eventClient == nil {
		return
	}
	if err := events.PublishWithRetry(s.eventClient, events.Event{Type: events.EventDataChanged}, 3); err != nil {
		slog.Debug("failed to publish data change", "error", err)
	}
}
