package drag

import "errors"

// Drag session errors
var (
	// ErrDragActive indicates a drag is already armed or in progress
	ErrDragActive = errors.New("a drag is already in progress")

	// ErrNoDrag indicates an operation that needs an active drag while idle
	ErrNoDrag = errors.New("no drag in progress")

	// ErrNoDrop indicates the drag ended without a valid drop target and was cancelled
	ErrNoDrop = errors.New("drag ended outside any drop target")

	// ErrInvalidSource indicates a session without a source identity
	ErrInvalidSource = errors.New("drag source has no identity")
)
