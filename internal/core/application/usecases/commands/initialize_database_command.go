package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	DefaultDemoCouriers = 8
	DefaultDemoOrders   = 20
	maxDemoEntities     = 500
)

var ErrInitializeDatabaseCommandIsNotConstructed = errors.New(
	"InitializeDatabaseCommand must be created via NewInitializeDatabaseCommand constructor",
)

// InitializeDatabaseCommand resets the database and seeds demo couriers and
// orders around the depot.
type InitializeDatabaseCommand struct {
	couriers int
	orders   int

	guard guard.ConstructorGuard
}

func NewInitializeDatabaseCommand(couriers, orders int) (InitializeDatabaseCommand, error) {
	var couriersErr, ordersErr error
	if couriers < 0 || couriers > maxDemoEntities {
		couriersErr = errs.NewValueIsOutOfRangeError("couriers", couriers, 0, maxDemoEntities)
	}
	if orders < 0 || orders > maxDemoEntities {
		ordersErr = errs.NewValueIsOutOfRangeError("orders", orders, 0, maxDemoEntities)
	}
	if err := errors.Join(couriersErr, ordersErr); err != nil {
		return InitializeDatabaseCommand{}, err
	}

	return InitializeDatabaseCommand{
		couriers: couriers,
		orders:   orders,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c InitializeDatabaseCommand) Validate() error {
	return c.guard.Validate(ErrInitializeDatabaseCommandIsNotConstructed)
}

func (c InitializeDatabaseCommand) Couriers() int { return c.couriers }
func (c InitializeDatabaseCommand) Orders() int   { return c.orders }
