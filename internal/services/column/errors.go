package column

import "errors"

// Column order errors
var (
	// ErrNoConfigSlot indicates the store was created without a configuration slot
	ErrNoConfigSlot = errors.New("no configuration slot for column order")

	// ErrNameHasComma indicates a column name that cannot be stored in the comma separated order
	ErrNameHasComma = errors.New("column name cannot contain a comma")

	// ErrNameNotStorable indicates an empty or whitespace-padded column name, which reads back changed
	ErrNameNotStorable = errors.New("column name cannot be empty or padded with whitespace")
)
