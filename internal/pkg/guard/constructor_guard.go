// Package guard lets value types detect that they were built by their constructor
// rather than declared as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when no error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into domain values. Only NewConstructorGuard sets it,
// so a zero value reports itself as unconstructed.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard, otherwise err
// (or ErrDefaultConstructorGuard when err is nil).
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
