package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the descriptive attributes of an open order.
type UpdateOrderCommand struct {
	orderID kernel.UUID
	details OrderDetails

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID kernel.UUID, details OrderDetails) (UpdateOrderCommand, error) {
	details, err := validateOrderDetails(details)
	if err = errors.Join(orderID.Validate(), err); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c UpdateOrderCommand) Details() OrderDetails { return c.details }
