package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository stores orders. Error semantics match CourierRepository.
type OrderRepository interface {
	Add(ctx context.Context, order *order.Order) error

	Update(ctx context.Context, order *order.Order) error

	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	DeleteAll(ctx context.Context) error
}
