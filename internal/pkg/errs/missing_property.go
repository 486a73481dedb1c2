package errs

import (
	"errors"
	"fmt"
)

// ErrMissingProperty is the sentinel for values that should never reach a calculation,
// such as an unrecognized enum member. It signals a programming error.
var ErrMissingProperty = errors.New("missing property")

// MissingPropertyError names the property and the value that could not be handled.
type MissingPropertyError struct {
	Property string
	Value    any
}

// NewMissingPropertyError creates a MissingPropertyError.
func NewMissingPropertyError(property string, value any) *MissingPropertyError {
	return &MissingPropertyError{
		Property: property,
		Value:    value,
	}
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s: no %s for %v", ErrMissingProperty, e.Property, e.Value)
}

func (e *MissingPropertyError) Unwrap() error {
	return ErrMissingProperty
}
