package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// DistanceProvider resolves addresses and measures road distances.
//
// Geocode fails with an errs.AddressIsInvalidError when the address cannot be
// resolved. RouteDistance returns kilometres along the road network of the
// profile; any failure is returned, never a zero distance.
type DistanceProvider interface {
	Geocode(ctx context.Context, address string) (kernel.Coordinates, error)

	RouteDistance(ctx context.Context, from, to kernel.Coordinates, profile kernel.RouteProfile) (float64, error)
}
