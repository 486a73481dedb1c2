package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierDeliveriesQueryIsNotConstructed = errors.New(
	"GetCourierDeliveriesQuery must be created via NewGetCourierDeliveriesQuery constructor",
)

// GetCourierDeliveriesQuery returns a courier's delivery history.
type GetCourierDeliveriesQuery struct {
	courierID int64

	guard guard.ConstructorGuard
}

func NewGetCourierDeliveriesQuery(courierID int64) (GetCourierDeliveriesQuery, error) {
	if courierID <= 0 {
		return GetCourierDeliveriesQuery{}, errs.NewValueIsInvalidError("courier id")
	}

	return GetCourierDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDeliveriesQueryIsNotConstructed)
}

func (q GetCourierDeliveriesQuery) CourierID() int64 {
	return q.courierID
}
