package testutil

import (
	"context"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Distances is a deterministic distance provider. Unknown addresses fail to
// geocode; routes are the aerial distance times Detour unless RouteErr is set.
type Distances struct {
	mu sync.Mutex

	Addresses map[string]kernel.Coordinates
	Detour    float64
	RouteErr  error

	geocodes int
	routes   int
}

func NewDistances() *Distances {
	return &Distances{
		Addresses: map[string]kernel.Coordinates{},
		Detour:    1.25,
	}
}

func (d *Distances) Geocode(_ context.Context, address string) (kernel.Coordinates, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.geocodes++
	location, ok := d.Addresses[address]
	if !ok {
		return kernel.Coordinates{}, errs.NewAddressIsInvalidError(address, nil)
	}
	return location, nil
}

func (d *Distances) RouteDistance(_ context.Context, from, to kernel.Coordinates, _ kernel.RouteProfile) (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.routes++
	if d.RouteErr != nil {
		return 0, d.RouteErr
	}
	km, err := from.AerialDistance(to)
	if err != nil {
		return 0, err
	}
	return km * d.Detour, nil
}

func (d *Distances) GeocodeCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.geocodes
}

func (d *Distances) RouteCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.routes
}
