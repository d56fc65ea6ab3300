package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/paso-board/internal/models"
	columnservice "github.com/thenoetrevino/paso-board/internal/services/column"
	mutationservice "github.com/thenoetrevino/paso-board/internal/services/mutation"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, failed mutations, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Record not found, column not on the board, or any case where
	// an ID or name doesn't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Malformed points or field assignments, data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Values that don't parse as their kind, invalid sorts,
	// column names that cannot be stored, or drops the board rejects.
	ExitValidation = 5
)

// ErrMalformedInput indicates command input that could not be parsed
var ErrMalformedInput = errors.New("malformed input")

// CodedError carries the process exit code for a failed command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an explicit exit code
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// Exitf creates an error with an explicit exit code
func Exitf(code int, format string, args ...any) error {
	return &CodedError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCodeFor classifies an error into an exit code
func ExitCodeFor(err error) int {
	var exitErr *CodedError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, models.ErrRecordNotFound),
		errors.Is(err, models.ErrUnknownRecord),
		errors.Is(err, models.ErrUnknownColumn):
		return ExitNotFound
	case errors.Is(err, ErrMalformedInput):
		return ExitDataErr
	case errors.Is(err, models.ErrInvalidValue),
		errors.Is(err, models.ErrInvalidSort),
		errors.Is(err, models.ErrNoBackingField),
		errors.Is(err, models.ErrNoSortField),
		errors.Is(err, columnservice.ErrNameHasComma),
		errors.Is(err, columnservice.ErrNameNotStorable),
		errors.Is(err, mutationservice.ErrEmptyFieldName),
		errors.Is(err, mutationservice.ErrInvalidRecordID):
		return ExitValidation
	default:
		return ExitError
	}
}
