// Package query is a minimal host-side grouping engine.
//
// It partitions stored records by one property and orders each partition by
// the view's sort, which is what the board expects from its host. Records are
// read fresh on every call.
package query

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/models"
)

// Namespaces of visible properties
const (
	NoteNamespace = "note."
	FileName      = "file.name"
)

// RecordReader loads every record of the vault
type RecordReader interface {
	GetRecords(ctx context.Context) ([]*models.Record, error)
}

// Query describes one board view
type Query struct {
	GroupBy string // property, e.g. "note.status" or "status"
	Sort    []models.SortSpec
	Visible []string // visible properties, namespaced
}

// Property qualifies a bare field name with the note namespace
func Property(name string) string {
	if name == "" || strings.Contains(name, ".") {
		return name
	}
	return NoteNamespace + name
}

// Engine serves refreshes for one query
type Engine struct {
	records RecordReader
	query   Query
}

// NewEngine creates an engine over records
func NewEngine(records RecordReader, q Query) *Engine {
	return &Engine{records: records, query: q}
}

// Query returns the engine's query
func (e *Engine) Query() Query {
	return e.query
}

// ReadGroups implements board.Source
func (e *Engine) ReadGroups(ctx context.Context) (board.Refresh, error) {
	records, err := e.records.GetRecords(ctx)
	if err != nil {
		return board.Refresh{}, fmt.Errorf("failed to load records: %w", err)
	}
	return GroupBy(records, e.query), nil
}

// GroupBy partitions records by the query's group property.
// Groups are ordered by key with the no-value group last. Records within a
// group follow the sort specs, then their ID.
func GroupBy(records []*models.Record, q Query) board.Refresh {
	prop := Property(q.GroupBy)
	visible := q.Visible
	if len(visible) == 0 && prop != "" {
		visible = []string{prop}
	}

	type bucket struct {
		key     models.Value
		records []*models.Record
	}
	var buckets []*bucket
	index := make(map[string]*bucket)

	for _, r := range records {
		r = withProperties(r)
		key := r.Property(prop)
		id := key.Kind().String() + "\x00" + models.Canonical(key)
		b, ok := index[id]
		if !ok {
			b = &bucket{key: key}
			index[id] = b
			buckets = append(buckets, b)
		}
		b.records = append(b.records, r)
	}

	slices.SortStableFunc(buckets, func(a, b *bucket) int {
		return compareValues(a.key, b.key, false)
	})

	groups := make([]models.Group, len(buckets))
	for i, b := range buckets {
		sortRecords(b.records, q.Sort)
		groups[i] = models.Group{Key: b.key, Records: b.records}
	}
	return board.Refresh{Groups: groups, VisibleFields: visible, Sort: q.Sort}
}

// withProperties returns a copy of r with its visible properties populated
func withProperties(r *models.Record) *models.Record {
	cp := *r
	cp.Properties = make(map[string]models.Value, len(r.Fields)+1)
	for k, v := range r.Properties {
		cp.Properties[k] = v
	}
	for _, f := range r.Fields {
		cp.Properties[NoteNamespace+f.Name] = f.Value
	}
	cp.Properties[FileName] = models.String(r.ID)
	return &cp
}

func sortRecords(records []*models.Record, specs []models.SortSpec) {
	slices.SortStableFunc(records, func(a, b *models.Record) int {
		for _, s := range specs {
			p := Property(s.Property)
			if c := compareValues(a.Property(p), b.Property(p), s.Descending()); c != 0 {
				return c
			}
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// compareValues orders numbers numerically and everything else by canonical
// text. Absent values sort last in both directions.
func compareValues(a, b models.Value, descending bool) int {
	switch {
	case a.IsAbsent() && b.IsAbsent():
		return 0
	case a.IsAbsent():
		return 1
	case b.IsAbsent():
		return -1
	}
	var c int
	if a.IsNumber() && b.IsNumber() {
		c = cmp.Compare(a.Num(), b.Num())
	} else {
		c = strings.Compare(models.Canonical(a), models.Canonical(b))
	}
	if descending {
		return -c
	}
	return c
}
