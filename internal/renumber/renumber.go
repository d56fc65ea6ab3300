// Package renumber assigns clean consecutive sort values to a column.
//
// Every reorder rewrites the sort field of every record in the column, so
// there is never a need for fractional or sparse keys.
package renumber

// Assignment is the new sort value for one record
type Assignment struct {
	RecordID string
	Value    int
}

// Renumber assigns integers to ids in their final order.
// Ascending assigns 1..n left to right; descending assigns n..1, so that
// sorting by the field in the configured direction reproduces this order.
func Renumber(ids []string, descending bool) []Assignment {
	n := len(ids)
	out := make([]Assignment, n)
	for i, id := range ids {
		v := i + 1
		if descending {
			v = n - i
		}
		out[i] = Assignment{RecordID: id, Value: v}
	}
	return out
}

// Map is Renumber keyed by record ID
func Map(ids []string, descending bool) map[string]int {
	m := make(map[string]int, len(ids))
	for _, a := range Renumber(ids, descending) {
		m[a.RecordID] = a.Value
	}
	return m
}

// Reorder returns the order after moving id to index.
// index is the final position of id, counted in the list without id.
// Out-of-range indexes are clamped. ok is false when id is not in ids.
func Reorder(ids []string, id string, index int) ([]string, bool) {
	from := -1
	rest := make([]string, 0, len(ids))
	for i, cur := range ids {
		if cur == id && from < 0 {
			from = i
			continue
		}
		rest = append(rest, cur)
	}
	if from < 0 {
		return nil, false
	}

	index = max(0, min(index, len(rest)))
	out := make([]string, 0, len(ids))
	out = append(out, rest[:index]...)
	out = append(out, id)
	out = append(out, rest[index:]...)
	return out, true
}
