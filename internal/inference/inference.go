// Package inference works out which record field produced a grouping.
//
// The grouping engine hands the board groups keyed by value but does not say
// which field it grouped on. Cross-column moves need that field name, so it is
// recovered by matching the first populated group's key against one of its
// records.
package inference

import (
	"log/slog"

	"github.com/thenoetrevino/paso-board/internal/models"
)

// InferBackingField returns the name of the field whose value produced the
// group keys, or ok=false when no field matches.
//
// The sample record is the first record of the first group with a non-absent
// key. Its full field mapping is scanned in order first; if nothing matches,
// the visible properties are scanned and the matching property name is
// returned without its namespace prefix.
//
// When several fields stringify to the key the first one in mapping order
// wins. This is a tie-break, not a guarantee that the right field was found.
func InferBackingField(groups []models.Group, visibleFields []string) (string, bool) {
	sample, key, found := sampleRecord(groups)
	if !found {
		return "", false
	}
	want := models.Canonical(key)

	// Absent values never match, not even a key whose canonical form is "".
	// A present empty string does.
	for _, f := range sample.Fields {
		if f.Value.IsAbsent() {
			continue
		}
		if models.Canonical(f.Value) == want {
			return f.Name, true
		}
	}

	for _, property := range visibleFields {
		v := sample.Property(property)
		if v.IsAbsent() {
			continue
		}
		if models.Canonical(v) == want {
			return models.StripNamespace(property), true
		}
	}

	slog.Debug("backing field not inferred", "record", sample.ID, "key", want)
	return "", false
}

// sampleRecord picks the first record of the first group that has a key and members
func sampleRecord(groups []models.Group) (*models.Record, models.Value, bool) {
	for _, g := range groups {
		if g.Key.IsAbsent() || len(g.Records) == 0 || g.Records[0] == nil {
			continue
		}
		return g.Records[0], g.Key, true
	}
	return nil, models.Absent(), false
}
