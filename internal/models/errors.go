package models

import "errors"

// Domain-specific errors shared across the board packages
var (
	// ErrNoBackingField indicates the field behind the column grouping could not be inferred
	ErrNoBackingField = errors.New("no backing field: cross-column moves are disabled")

	// ErrNoSortField indicates reordering was requested without a single numeric sort field
	ErrNoSortField = errors.New("no single numeric sort field configured")

	// ErrUnknownColumn indicates a column name that is not part of the current render
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnknownRecord indicates a record that is not part of the current render
	ErrUnknownRecord = errors.New("unknown record")

	// ErrRecordNotFound indicates a record missing from the store
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidValue indicates text that cannot be parsed as the requested kind
	ErrInvalidValue = errors.New("invalid value for kind")

	// ErrInvalidSort indicates a malformed sort specification
	ErrInvalidSort = errors.New("invalid sort specification")
)
