package column

import (
	"slices"
	"strings"

	"github.com/thenoetrevino/paso-board/internal/models"
)

// ParseOrder decodes a persisted column order.
// The canonical form is a comma separated string; a pre-parsed list of
// strings is accepted too. Whitespace is trimmed and empty names dropped.
// Any other representation yields an empty order.
func ParseOrder(raw any) []string {
	switch v := raw.(type) {
	case string:
		return cleanNames(strings.Split(v, ","))
	case []string:
		return cleanNames(v)
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
		return cleanNames(names)
	default:
		return []string{}
	}
}

// FormatOrder encodes an order for storage
func FormatOrder(order []string) string {
	return strings.Join(order, ",")
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// SortByOrder orders columns for display.
// Columns named in order sort by their rank; the rest follow in their input
// order. With an empty order the input slice is returned as is.
func SortByOrder(order []string, columns []*models.Column) []*models.Column {
	if len(order) == 0 {
		return columns
	}

	rank := make(map[string]int, len(order))
	for i, name := range order {
		if _, dup := rank[name]; !dup {
			rank[name] = i
		}
	}
	rankOf := func(c *models.Column) int {
		if r, ok := rank[c.Name]; ok {
			return r
		}
		return len(order)
	}

	sorted := slices.Clone(columns)
	slices.SortStableFunc(sorted, func(a, b *models.Column) int {
		return rankOf(a) - rankOf(b)
	})
	return sorted
}

// Prune drops names from order that are not among live column names
func Prune(order []string, live []string) []string {
	present := make(map[string]struct{}, len(live))
	for _, n := range live {
		present[n] = struct{}{}
	}
	out := make([]string, 0, len(order))
	for _, n := range order {
		if _, ok := present[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Move returns names with name moved to index.
// index is the final position counted in the list without name.
func Move(names []string, name string, index int) ([]string, bool) {
	from := slices.Index(names, name)
	if from < 0 {
		return nil, false
	}
	rest := slices.Delete(slices.Clone(names), from, from+1)
	index = max(0, min(index, len(rest)))
	return slices.Insert(rest, index, name), true
}
