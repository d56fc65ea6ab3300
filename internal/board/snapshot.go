package board

import (
	"github.com/thenoetrevino/paso-board/internal/inference"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/services/column"
)

// Refresh is what the grouping engine delivers on every data change
type Refresh struct {
	Groups        []models.Group
	VisibleFields []string
	Sort          []models.SortSpec
}

// Snapshot is the immutable, render-scoped view of the board.
// It is rebuilt from scratch on every refresh and handed to the resolver, so
// no handler reads shared mutable group state.
type Snapshot struct {
	Columns []*models.Column // display order

	BackingField    string
	HasBackingField bool

	SortField    models.SortField
	HasSortField bool

	byName map[string]*models.Column
}

// NewSnapshot derives columns, backing field and sort field from a refresh
// and applies the stored column order.
func NewSnapshot(r Refresh, order []string) *Snapshot {
	s := &Snapshot{byName: make(map[string]*models.Column, len(r.Groups))}

	var columns []*models.Column
	for _, g := range r.Groups {
		name := models.ColumnName(g.Key)
		if existing, ok := s.byName[name]; ok {
			// Distinct keys with the same display name share one column
			existing.Records = append(existing.Records, g.Records...)
			continue
		}
		c := &models.Column{Name: name, Key: g.Key, Records: append([]*models.Record(nil), g.Records...)}
		s.byName[name] = c
		columns = append(columns, c)
	}
	s.Columns = column.SortByOrder(order, columns)

	s.BackingField, s.HasBackingField = inference.InferBackingField(r.Groups, r.VisibleFields)
	s.SortField, s.HasSortField = resolveSortField(r.Sort, r.Groups)
	return s
}

// resolveSortField enables reordering only for exactly one numeric sort field.
// A field is numeric when every present value in the record set is a number.
func resolveSortField(specs []models.SortSpec, groups []models.Group) (models.SortField, bool) {
	if len(specs) != 1 {
		return models.SortField{}, false
	}
	spec := specs[0]
	name := spec.Field()
	if name == "" {
		return models.SortField{}, false
	}
	for _, g := range groups {
		for _, r := range g.Records {
			v := r.Get(name)
			if v.IsAbsent() {
				v = r.Property(spec.Property)
			}
			if !v.IsAbsent() && !v.IsNumber() {
				return models.SortField{}, false
			}
		}
	}
	return models.SortField{Name: name, Descending: spec.Descending()}, true
}

// Column looks up a column by display name
func (s *Snapshot) Column(name string) (*models.Column, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// Locate finds the column and index holding a record
func (s *Snapshot) Locate(recordID string) (*models.Column, int, bool) {
	for _, c := range s.Columns {
		if i := c.IndexOf(recordID); i >= 0 {
			return c, i, true
		}
	}
	return nil, -1, false
}

// ColumnIndex returns the display position of a column, or -1
func (s *Snapshot) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ColumnNames returns the display names in display order
func (s *Snapshot) ColumnNames() []string {
	return models.ColumnNames(s.Columns)
}
