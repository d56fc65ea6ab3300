package board

import "errors"

var (
	// ErrNoSnapshot indicates a drop before the first refresh
	ErrNoSnapshot = errors.New("board has not been loaded")

	// ErrBatchFailed indicates some records of a renumbering batch were not updated
	ErrBatchFailed = errors.New("some records could not be updated")
)
