package events

import "errors"

var (
	// ErrClosed indicates the broker has been closed
	ErrClosed = errors.New("event broker closed")
)
