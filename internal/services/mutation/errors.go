package mutation

import "errors"

// Mutation request errors
var (
	ErrInvalidRecordID = errors.New("invalid record ID")
	ErrEmptyFieldName  = errors.New("field name cannot be empty")
	ErrNoMutator       = errors.New("no mutation applier configured")
)
