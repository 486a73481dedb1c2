package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups repository calls into one transaction.
// Repositories obtained before Begin read committed state only.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	CourierRepository() CourierRepository

	OrderRepository() OrderRepository

	DeliveryRepository() DeliveryRepository
}
