package models

import "strings"

// Field is a single named value in a record's frontmatter
type Field struct {
	Name  string
	Value Value
}

// Record is an identifiable entity shown as a card on the board.
// Records are owned by the host store; the board only reads them and
// requests mutations.
type Record struct {
	ID string // Stable identity (path or ID)

	// Fields is the full field mapping in declaration order.
	// Order matters: backing-field inference picks the first match.
	Fields []Field

	// Properties is the lighter visible-field subset keyed by namespaced
	// property name (e.g. "note.status", "file.name").
	Properties map[string]Value
}

// Get returns the value of the named field, or Absent
func (r *Record) Get(name string) Value {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return Absent()
}

// Property returns a visible property by namespaced name, or Absent
func (r *Record) Property(name string) Value {
	if r.Properties == nil {
		return Absent()
	}
	return r.Properties[name]
}

// StripNamespace removes a property's namespace prefix ("note.status" -> "status")
func StripNamespace(property string) string {
	if i := strings.Index(property, "."); i >= 0 {
		return property[i+1:]
	}
	return property
}

// RecordIDs returns the identities of records in order
func RecordIDs(records []*Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
