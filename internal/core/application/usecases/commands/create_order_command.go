package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderDetails are the editable attributes of an order.
type OrderDetails struct {
	Type     order.Type
	Address  string
	Parcel   order.Parcel
	Customer order.Customer
}

// CreateOrderCommand opens a new order at the current virtual time.
//
// Example:
//
//	parcel, _ := order.NewParcel(1.2, 4, order.Dimensions{LengthCm: 20, WidthCm: 15, HeightCm: 10}, false)
//	customer, _ := order.NewCustomer("Max Mustermann", "+49 30 7654321")
//	cmd, err := NewCreateOrderCommand(OrderDetails{
//	    Type:     order.Express,
//	    Address:  "Torstrasse 1, Berlin",
//	    Parcel:   parcel,
//	    Customer: customer,
//	})
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	details OrderDetails

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(details OrderDetails) (CreateOrderCommand, error) {
	details, err := validateOrderDetails(details)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Details() OrderDetails {
	return c.details
}

func validateOrderDetails(details OrderDetails) (OrderDetails, error) {
	details.Address = strings.TrimSpace(details.Address)

	var addressErr error
	if details.Address == "" {
		addressErr = order.ErrAddressIsRequired
	}

	if err := errors.Join(
		details.Type.Validate(),
		addressErr,
		details.Parcel.Validate(),
		details.Customer.Validate(),
	); err != nil {
		return OrderDetails{}, err
	}
	return details, nil
}
