package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrPickUpOrderCommandIsNotConstructed = errors.New(
	"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
)

// PickUpOrderCommand asks for a courier to take an open order from the depot.
//
// Example:
//
//	cmd, err := NewPickUpOrderCommand(courierID, orderID)
//	if err != nil {
//	    return err
//	}
//	deliveryID, err := handler.Handle(ctx, cmd)
type PickUpOrderCommand struct {
	courierID int64
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewPickUpOrderCommand(courierID int64, orderID kernel.UUID) (PickUpOrderCommand, error) {
	command := PickUpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setOrderID(orderID),
	); err != nil {
		return PickUpOrderCommand{}, err
	}

	return command, nil
}

func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

func (c PickUpOrderCommand) CourierID() int64     { return c.courierID }
func (c PickUpOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c *PickUpOrderCommand) setCourierID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("courier id")
	}

	c.courierID = id
	return nil
}

func (c *PickUpOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}
