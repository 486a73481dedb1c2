package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for operations rejected by the current state of an entity.
var ErrConflict = errors.New("conflict")

// ConflictError describes which state invariant an operation would violate.
// Conflicts are usually declared once as package-level values so callers can
// match them with errors.Is.
type ConflictError struct {
	Reason string
}

// NewConflictError creates a ConflictError with a human-readable reason.
func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConflict, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
