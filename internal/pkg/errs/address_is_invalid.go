package errs

import (
	"errors"
	"fmt"
)

// ErrAddressIsInvalid is the sentinel for addresses that are empty or cannot be geocoded.
var ErrAddressIsInvalid = errors.New("address is invalid")

// AddressIsInvalidError keeps the address that failed and the geocoder's error.
type AddressIsInvalidError struct {
	Address string
	Cause   error
}

// NewAddressIsInvalidError creates an AddressIsInvalidError.
func NewAddressIsInvalidError(address string, cause error) *AddressIsInvalidError {
	return &AddressIsInvalidError{
		Address: address,
		Cause:   cause,
	}
}

func (e *AddressIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %q (cause: %v)", ErrAddressIsInvalid, e.Address, e.Cause)
	}
	return fmt.Sprintf("%s: %q", ErrAddressIsInvalid, e.Address)
}

func (e *AddressIsInvalidError) Unwrap() error {
	return ErrAddressIsInvalid
}
