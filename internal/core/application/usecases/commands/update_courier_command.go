package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateCourierCommandIsNotConstructed = errors.New(
	"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
)

// UpdateCourierCommand replaces every editable attribute of a courier.
// A zero EmploymentStart keeps the stored one.
type UpdateCourierCommand struct {
	courierID int64
	contact   courier.Contact
	details   CourierDetails

	guard guard.ConstructorGuard
}

func NewUpdateCourierCommand(courierID int64, details CourierDetails) (UpdateCourierCommand, error) {
	var idErr error
	if courierID <= 0 {
		idErr = errs.NewValueIsInvalidError("courier id")
	}
	contact, err := validateCourierDetails(details)
	if err = errors.Join(idErr, err); err != nil {
		return UpdateCourierCommand{}, err
	}

	return UpdateCourierCommand{
		courierID: courierID,
		contact:   contact,
		details:   copyCourierDetails(details),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

func (c UpdateCourierCommand) CourierID() int64         { return c.courierID }
func (c UpdateCourierCommand) Contact() courier.Contact { return c.contact }
func (c UpdateCourierCommand) Details() CourierDetails  { return copyCourierDetails(c.details) }
