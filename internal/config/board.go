package config

// Board defaults
const (
	DefaultDragThreshold       = 5.0
	DefaultMutationConcurrency = 8
	DefaultView                = "board"
)

// BoardConfig holds the board engine settings
type BoardConfig struct {
	// Database is the SQLite file; empty means ~/.paso/board.db
	Database string `yaml:"database"`

	// DragThreshold is the pointer travel, in pixels, before a press becomes a drag
	DragThreshold float64 `yaml:"drag_threshold"`

	// MutationConcurrency bounds in-flight set-field requests during a renumbering
	MutationConcurrency int `yaml:"mutation_concurrency"`

	// DefaultView names the view whose column order is used when --view is not given
	DefaultView string `yaml:"default_view"`
}

// applyDefaults fills in any missing board settings
func (b *BoardConfig) applyDefaults() {
	if b.DragThreshold <= 0 {
		b.DragThreshold = DefaultDragThreshold
	}
	if b.MutationConcurrency <= 0 {
		b.MutationConcurrency = DefaultMutationConcurrency
	}
	if b.DefaultView == "" {
		b.DefaultView = DefaultView
	}
}
