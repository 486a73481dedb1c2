package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteCourierCommandIsNotConstructed = errors.New(
	"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
)

type DeleteCourierCommand struct {
	courierID int64

	guard guard.ConstructorGuard
}

func NewDeleteCourierCommand(courierID int64) (DeleteCourierCommand, error) {
	if courierID <= 0 {
		return DeleteCourierCommand{}, errs.NewValueIsInvalidError("courier id")
	}

	return DeleteCourierCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

func (c DeleteCourierCommand) CourierID() int64 {
	return c.courierID
}
