package models

import (
	"fmt"
	"strings"
)

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// SortSpec is one entry of the view's sort configuration
type SortSpec struct {
	Property  string
	Direction Direction
}

// Field returns the record field name this sort orders by
func (s SortSpec) Field() string {
	return StripNamespace(s.Property)
}

// Descending reports whether this sort orders high-to-low
func (s SortSpec) Descending() bool {
	return s.Direction == Descending
}

// ParseSortSpec parses "field", "field:asc" or "field:desc"
func ParseSortSpec(s string) (SortSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortSpec{}, fmt.Errorf("%w: empty sort", ErrInvalidSort)
	}
	property, dir, hasDir := strings.Cut(s, ":")
	spec := SortSpec{Property: strings.TrimSpace(property), Direction: Ascending}
	if spec.Property == "" {
		return SortSpec{}, fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
	if hasDir {
		switch strings.ToUpper(strings.TrimSpace(dir)) {
		case "ASC":
		case "DESC":
			spec.Direction = Descending
		default:
			return SortSpec{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidSort, dir)
		}
	}
	return spec, nil
}

// SortField is the resolved single numeric sort field used for reordering
type SortField struct {
	Name       string
	Descending bool
}
