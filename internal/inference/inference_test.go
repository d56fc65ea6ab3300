package inference

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/paso-board/internal/models"
)

func record(id string, fields ...models.Field) *models.Record {
	return &models.Record{ID: id, Fields: fields}
}

func field(name string, v models.Value) models.Field {
	return models.Field{Name: name, Value: v}
}

func TestInferBackingField(t *testing.T) {
	t.Parallel()

	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		groups    []models.Group
		visible   []string
		wantField string
		wantOK    bool
	}{
		{
			name: "string key matches frontmatter field",
			groups: []models.Group{
				{Key: models.String("Todo"), Records: []*models.Record{
					record("a.md", field("title", models.String("A")), field("status", models.String("Todo"))),
				}},
			},
			wantField: "status",
			wantOK:    true,
		},
		{
			name: "number key matches by canonical form",
			groups: []models.Group{
				{Key: models.Number(3), Records: []*models.Record{
					record("a.md", field("status", models.String("Todo")), field("priority", models.Number(3))),
				}},
			},
			wantField: "priority",
			wantOK:    true,
		},
		{
			name: "date key",
			groups: []models.Group{
				{Key: models.Date(due), Records: []*models.Record{
					record("a.md", field("due", models.Date(due))),
				}},
			},
			wantField: "due",
			wantOK:    true,
		},
		{
			name: "skips absent and empty groups",
			groups: []models.Group{
				{Key: models.Absent(), Records: []*models.Record{record("x.md", field("status", models.String("")))}},
				{Key: models.String("Doing"), Records: nil},
				{Key: models.String("Done"), Records: []*models.Record{
					record("b.md", field("status", models.String("Done"))),
				}},
			},
			wantField: "status",
			wantOK:    true,
		},
		{
			name: "empty string key matches empty string field",
			groups: []models.Group{
				{Key: models.String(""), Records: []*models.Record{
					record("a.md", field("title", models.String("Ship")), field("status", models.String(""))),
				}},
			},
			wantField: "status",
			wantOK:    true,
		},
		{
			name: "empty string key never matches absent field",
			groups: []models.Group{
				{Key: models.String(""), Records: []*models.Record{
					record("a.md", field("status", models.Absent()), field("title", models.String("Ship"))),
				}},
			},
			wantOK: false,
		},
		{
			name: "first field wins on collision",
			groups: []models.Group{
				{Key: models.String("x"), Records: []*models.Record{
					record("a.md", field("alpha", models.String("x")), field("beta", models.String("x"))),
				}},
			},
			wantField: "alpha",
			wantOK:    true,
		},
		{
			name: "falls back to visible properties and strips namespace",
			groups: []models.Group{
				{Key: models.String("a.md"), Records: []*models.Record{
					{
						ID:         "a.md",
						Fields:     []models.Field{field("status", models.String("Todo"))},
						Properties: map[string]models.Value{"file.name": models.String("a.md")},
					},
				}},
			},
			visible:   []string{"note.status", "file.name"},
			wantField: "name",
			wantOK:    true,
		},
		{
			name: "no match",
			groups: []models.Group{
				{Key: models.String("Todo"), Records: []*models.Record{
					record("a.md", field("status", models.String("Doing"))),
				}},
			},
			visible: []string{"note.status"},
			wantOK:  false,
		},
		{
			name:   "only no-value group",
			groups: []models.Group{{Key: models.Absent(), Records: []*models.Record{record("a.md")}}},
			wantOK: false,
		},
		{
			name:   "no groups",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := InferBackingField(tt.groups, tt.visible)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantField, got)
		})
	}
}

func TestInferBackingField_ResultMatchesKey(t *testing.T) {
	t.Parallel()

	keys := []models.Value{
		models.String("Todo"),
		models.Number(2.5),
		models.Boolean(true),
		models.Tag("urgent"),
		models.Link("projects/alpha"),
		models.List(models.String("a"), models.String("b")),
	}
	for _, key := range keys {
		r := record("r.md",
			field("title", models.String("something else")),
			field("target", key),
		)
		groups := []models.Group{{Key: key, Records: []*models.Record{r}}}

		got, ok := InferBackingField(groups, nil)
		if assert.True(t, ok, "key %s", key) {
			assert.Equal(t, models.Canonical(key), models.Canonical(r.Get(got)))
		}
	}
}
