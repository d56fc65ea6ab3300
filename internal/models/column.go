package models

// NoValueColumn is the display name of the column holding records without a value
const NoValueColumn = "(No value)"

// Group is the grouping engine's partition of records by a key value.
// An absent Key is the no-value bucket.
type Group struct {
	Key     Value
	Records []*Record
}

// Column is the board's presentation of a Group.
// Name is the only identity used across renders for ordering and drop matching.
type Column struct {
	Name    string
	Key     Value
	Records []*Record
}

// IsNoValue reports whether the column is the no-value bucket
func (c *Column) IsNoValue() bool {
	return c.Key.IsAbsent()
}

// IndexOf returns the position of the record in the column, or -1
func (c *Column) IndexOf(recordID string) int {
	for i, r := range c.Records {
		if r.ID == recordID {
			return i
		}
	}
	return -1
}

// ColumnName derives a column's display name from its group key
func ColumnName(key Value) string {
	if key.IsAbsent() {
		return NoValueColumn
	}
	return Canonical(key)
}

// ColumnNames returns column display names in order
func ColumnNames(columns []*Column) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}
