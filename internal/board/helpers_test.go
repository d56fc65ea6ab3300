package board

import (
	"context"
	"sync"

	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/services/column"
	"github.com/thenoetrevino/paso-board/internal/services/mutation"
)

// memSlot is an in-memory view configuration
type memSlot struct {
	mu     sync.Mutex
	values map[string]any
}

func newMemSlot(order string) *memSlot {
	s := &memSlot{values: map[string]any{}}
	if order != "" {
		s.values[column.OrderKey] = order
	}
	return s
}

func (m *memSlot) Get(_ context.Context, key string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memSlot) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// request is one recorded mutation
type request struct {
	op     string // "set" or "delete"
	record string
	field  string
	value  models.Value
}

// recorder is a mutation.Mutator that records requests
type recorder struct {
	mu       sync.Mutex
	requests []request
	failFor  map[string]error
}

func (r *recorder) SetField(_ context.Context, id, name string, v models.Value) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failFor[id]; err != nil {
		return err
	}
	r.requests = append(r.requests, request{op: "set", record: id, field: name, value: v})
	return nil
}

func (r *recorder) DeleteField(_ context.Context, id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failFor[id]; err != nil {
		return err
	}
	r.requests = append(r.requests, request{op: "delete", record: id, field: name})
	return nil
}

func (r *recorder) sets() map[string]models.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]models.Value{}
	for _, req := range r.requests {
		if req.op == "set" {
			out[req.record] = req.value
		}
	}
	return out
}

// staticSource serves a fixed refresh
type staticSource struct {
	refresh Refresh
	err     error
}

func (s *staticSource) ReadGroups(context.Context) (Refresh, error) {
	return s.refresh, s.err
}

func rec(id string, fields ...models.Field) *models.Record {
	return &models.Record{ID: id, Fields: fields}
}

func f(name string, v models.Value) models.Field {
	return models.Field{Name: name, Value: v}
}

// todoDone is the canonical two-column board:
// Todo: A (order 1), B (order 2); Done: C (order 1)
func todoDone() Refresh {
	return Refresh{
		Groups: []models.Group{
			{Key: models.String("Todo"), Records: []*models.Record{
				rec("A", f("status", models.String("Todo")), f("order", models.Number(1))),
				rec("B", f("status", models.String("Todo")), f("order", models.Number(2))),
			}},
			{Key: models.String("Done"), Records: []*models.Record{
				rec("C", f("status", models.String("Done")), f("order", models.Number(1))),
			}},
			{Key: models.Absent(), Records: []*models.Record{
				rec("D", f("order", models.Number(1))),
			}},
		},
		Sort: []models.SortSpec{{Property: "note.order", Direction: models.Ascending}},
	}
}

func newTestBoard(order string, r Refresh) (*Board, *recorder, *memSlot) {
	slot := newMemSlot(order)
	m := &recorder{failFor: map[string]error{}}
	b := New(&staticSource{refresh: r}, column.NewService(slot), mutation.NewService(m, nil, 4))
	return b, m, slot
}
