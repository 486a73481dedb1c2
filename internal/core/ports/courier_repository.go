package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CourierRepository stores couriers by their numeric id.
//
// Get, Update and Delete return an errs.ObjectNotFoundError for unknown ids;
// Add returns an errs.ObjectAlreadyExistsError when the id is taken.
type CourierRepository interface {
	Add(ctx context.Context, courier *courier.Courier) error

	Update(ctx context.Context, courier *courier.Courier) error

	Delete(ctx context.Context, id int64) error

	Get(ctx context.Context, id int64) (*courier.Courier, error)

	// GetAll returns every courier ordered by id.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	DeleteAll(ctx context.Context) error
}
