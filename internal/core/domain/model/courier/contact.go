package courier

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned for a blank courier name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned for a blank courier phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrEmailIsInvalid is returned for a non-empty email without an @.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
)

// Contact holds how a courier can be reached. Email is optional.
type Contact struct {
	name  string
	phone string
	email string
}

// NewContact trims and validates the contact fields.
func NewContact(name, phone, email string) (Contact, error) {
	c := Contact{
		name:  strings.TrimSpace(name),
		phone: strings.TrimSpace(phone),
		email: strings.TrimSpace(email),
	}

	var nameErr, phoneErr, emailErr error
	if c.name == "" {
		nameErr = ErrNameIsRequired
	}
	if c.phone == "" {
		phoneErr = ErrPhoneIsRequired
	}
	if c.email != "" && !strings.Contains(c.email, "@") {
		emailErr = ErrEmailIsInvalid
	}
	if err := errors.Join(nameErr, phoneErr, emailErr); err != nil {
		return Contact{}, err
	}

	return c, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }
func (c Contact) Email() string { return c.email }
