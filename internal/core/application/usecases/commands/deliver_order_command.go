package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand reports how the courier's current delivery ended.
type DeliverOrderCommand struct {
	courierID int64
	endType   delivery.EndType

	guard guard.ConstructorGuard
}

func NewDeliverOrderCommand(courierID int64, endType delivery.EndType) (DeliverOrderCommand, error) {
	command := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setEndType(endType),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return command, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) CourierID() int64          { return c.courierID }
func (c DeliverOrderCommand) EndType() delivery.EndType { return c.endType }

func (c *DeliverOrderCommand) setCourierID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("courier id")
	}

	c.courierID = id
	return nil
}

func (c *DeliverOrderCommand) setEndType(endType delivery.EndType) error {
	if err := endType.Validate(); err != nil {
		return err
	}

	c.endType = endType
	return nil
}
