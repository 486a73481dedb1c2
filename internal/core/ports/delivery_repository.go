package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository stores deliveries. Error semantics match CourierRepository.
// Lists are ordered by start time.
type DeliveryRepository interface {
	Add(ctx context.Context, delivery *delivery.Delivery) error

	Update(ctx context.Context, delivery *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	GetAll(ctx context.Context) ([]*delivery.Delivery, error)

	GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error)

	GetByCourierID(ctx context.Context, courierID int64) ([]*delivery.Delivery, error)

	// GetAllActive returns deliveries without an end time.
	GetAllActive(ctx context.Context) ([]*delivery.Delivery, error)

	DeleteAll(ctx context.Context) error
}
