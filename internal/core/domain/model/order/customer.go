package order

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
)

var (
	ErrCustomerNameIsRequired  = errs.NewValueIsRequiredError("customer name")
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customer phone")
)

// Customer is the recipient of an order.
type Customer struct {
	name  string
	phone string
}

func NewCustomer(name, phone string) (Customer, error) {
	c := Customer{name: strings.TrimSpace(name), phone: strings.TrimSpace(phone)}

	var nameErr, phoneErr error
	if c.name == "" {
		nameErr = ErrCustomerNameIsRequired
	}
	if c.phone == "" {
		phoneErr = ErrCustomerPhoneIsRequired
	}
	if err := errors.Join(nameErr, phoneErr); err != nil {
		return Customer{}, err
	}
	return c, nil
}

// Validate reports a zero Customer, one not built by NewCustomer.
func (c Customer) Validate() error {
	if c.name == "" || c.phone == "" {
		return ErrCustomerIsRequired
	}
	return nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }
