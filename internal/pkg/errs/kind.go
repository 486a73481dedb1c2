package errs

import "errors"

// Kind is the category of a failure as seen by callers of the engine.
type Kind int

const (
	// KindNone is returned for a nil error.
	KindNone Kind = iota
	KindNotFound
	KindAlreadyExists
	KindInvalidInput
	KindInvalidAddress
	KindConflict
	KindMissingProperty
	// KindInternal covers collaborator and infrastructure failures.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidAddress:
		return "invalid_address"
	case KindConflict:
		return "conflict"
	case KindMissingProperty:
		return "missing_property"
	default:
		return "internal"
	}
}

// KindOf classifies err by the sentinel it wraps.
// The order matters: an address error is more specific than generic invalid input.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrObjectAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrAddressIsInvalid):
		return KindInvalidAddress
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrMissingProperty):
		return KindMissingProperty
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidInput
	default:
		return KindInternal
	}
}
