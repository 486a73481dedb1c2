package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery lists the orders a courier could pick up right now.
//
// Example:
//
//	query, _ := NewGetAvailableOrdersQuery(7)
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("%s %.2f km %s\n", o.Address, o.AerialDistanceKm, o.ScheduleStatus)
//	}
type GetAvailableOrdersQuery struct {
	courierID int64

	guard guard.ConstructorGuard
}

func NewGetAvailableOrdersQuery(courierID int64) (GetAvailableOrdersQuery, error) {
	if courierID <= 0 {
		return GetAvailableOrdersQuery{}, errs.NewValueIsInvalidError("courier id")
	}

	return GetAvailableOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

func (q GetAvailableOrdersQuery) CourierID() int64 {
	return q.courierID
}

// AvailableOrder is one open order as seen by a courier.
type AvailableOrder struct {
	ID               kernel.UUID
	Type             order.Type
	Address          string
	AerialDistanceKm float64
	OpenedAt         time.Time
	ScheduleStatus   order.ScheduleStatus
}
