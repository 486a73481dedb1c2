package geo

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// DefaultDetour scales straight-line distances to approximate road distances.
const DefaultDetour = 1.3

// AerialProvider works without any external service. Addresses must be
// literal coordinates ("52.5219, 13.4132") and routes are the great-circle
// distance times Detour.
type AerialProvider struct {
	Detour float64
}

func NewAerialProvider(detour float64) *AerialProvider {
	if detour < 1 {
		detour = DefaultDetour
	}
	return &AerialProvider{Detour: detour}
}

func (p *AerialProvider) Geocode(_ context.Context, address string) (kernel.Coordinates, error) {
	lat, lon, ok := strings.Cut(address, ",")
	if !ok {
		return kernel.Coordinates{}, errs.NewAddressIsInvalidError(address,
			errors.New(`expected "latitude, longitude"`))
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return kernel.Coordinates{}, errs.NewAddressIsInvalidError(address, err)
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return kernel.Coordinates{}, errs.NewAddressIsInvalidError(address, err)
	}

	location, err := kernel.NewCoordinates(latitude, longitude)
	if err != nil {
		return kernel.Coordinates{}, errs.NewAddressIsInvalidError(address, err)
	}
	return location, nil
}

func (p *AerialProvider) RouteDistance(
	_ context.Context,
	from, to kernel.Coordinates,
	profile kernel.RouteProfile,
) (float64, error) {
	if err := profile.Validate(); err != nil {
		return 0, err
	}

	km, err := from.AerialDistance(to)
	if err != nil {
		return 0, err
	}
	return km * p.Detour, nil
}
