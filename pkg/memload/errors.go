package memload

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := loader.Load(ctx, graph)
//	if errors.Is(err, memload.ErrConnectionFailed) {
//	    // Handle unreachable database
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedValue indicates an attribute value of an unsupported type
	// was encountered during statement generation.
	ErrUnsupportedValue = errors.New("unsupported attribute value")

	// ErrConnectionFailed indicates a database connection could not be established.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrExecutionFailed indicates statement execution failed with a
	// non-transient error.
	ErrExecutionFailed = errors.New("execution failed")

	// ErrGraphNotFound indicates the input graph file was not found.
	ErrGraphNotFound = errors.New("graph file not found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnsupportedValue):
		return ExitEncodingError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrExecutionFailed):
		return ExitExecutionFailed
	case errors.Is(err, ErrGraphNotFound):
		return ExitGraphMissing
	}

	// Check for common connection error patterns
	errStr := err.Error()
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
