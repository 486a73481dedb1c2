package order

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrAddressIsRequired is returned for a blank destination address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrOpenedAtIsRequired is returned when the open timestamp is zero.
	ErrOpenedAtIsRequired = errs.NewValueIsRequiredError("opened at")
	// ErrCustomerIsRequired is returned for a zero Customer.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer")
)

// Order is the aggregate root for a delivery request.
//
// Orders never change state by themselves: whether an order is open, in
// progress or closed follows from its deliveries. Edits to the descriptive
// attributes replace the value wholesale through NewOrder with the original id
// and open timestamp.
type Order struct {
	id        kernel.UUID
	orderType Type
	address   string
	location  kernel.Coordinates
	parcel    Parcel
	customer  Customer
	openedAt  time.Time
	guard     guard.ConstructorGuard
}

// NewOrder validates every attribute and returns the order.
//
// location must be the geocoded form of address; the caller is responsible for
// resolving it before construction.
func NewOrder(
	id kernel.UUID,
	orderType Type,
	address string,
	location kernel.Coordinates,
	parcel Parcel,
	customer Customer,
	openedAt time.Time,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setAddress(address),
		o.setLocation(location),
		o.setParcel(parcel),
		o.setCustomer(customer),
		o.setOpenedAt(openedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	if other == nil {
		return false
	}
	return o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) Type() Type                   { return o.orderType }
func (o *Order) Address() string              { return o.address }
func (o *Order) Location() kernel.Coordinates { return o.location }
func (o *Order) Parcel() Parcel               { return o.parcel }
func (o *Order) Customer() Customer           { return o.customer }
func (o *Order) OpenedAt() time.Time          { return o.openedAt }

// Deadline is the latest acceptable delivery time for the given time span.
func (o *Order) Deadline(maxDeliveryTimeSpan time.Duration) time.Time {
	return o.openedAt.Add(maxDeliveryTimeSpan)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.orderType = t
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setLocation(location kernel.Coordinates) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setParcel(parcel Parcel) error {
	if err := parcel.Validate(); err != nil {
		return err
	}
	o.parcel = parcel
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setOpenedAt(openedAt time.Time) error {
	if openedAt.IsZero() {
		return ErrOpenedAtIsRequired
	}
	o.openedAt = openedAt
	return nil
}
