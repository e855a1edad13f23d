package domain

import (
	"errors"
	"fmt"
)

// sentinel error kinds, matched with errors.Is. Fetch and persistence
// failures are wrapped into one of these at the collaborator boundary and
// surfaced as descriptive strings, never as uncontrolled propagation.
var (
	ErrNetwork          = errors.New("network failure")
	ErrMalformed        = errors.New("malformed response")
	ErrPermissionDenied = errors.New("permission denied")
	ErrPersistence      = errors.New("persistence failure")
)

// Failuref wraps err into the given kind with a formatted context message
func Failuref(kind error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}

// WrapFailure attaches both the kind and the underlying cause to the error
// chain so callers can match the kind while keeping the original detail.
func WrapFailure(kind error, err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", msg, kind, err)
}
