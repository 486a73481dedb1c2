package commands

import (
	"context"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// locateOrder geocodes address and checks it lies within the general delivery
// area around the depot.
func locateOrder(
	ctx context.Context,
	geocoder ports.DistanceProvider,
	cfg settings.Config,
	address string,
) (kernel.Coordinates, error) {
	address = strings.TrimSpace(address)

	location, err := geocoder.Geocode(ctx, address)
	if err != nil {
		if errs.KindOf(err) != errs.KindInvalidAddress {
			err = errs.NewAddressIsInvalidError(address, err)
		}
		return kernel.Coordinates{}, err
	}

	limit, ok := cfg.MaxGeneralDistance()
	if !ok {
		return location, nil
	}
	aerialKm, err := cfg.CompanyLocation.AerialDistance(location)
	if err != nil {
		return kernel.Coordinates{}, err
	}
	if aerialKm > limit {
		return kernel.Coordinates{}, errs.NewValueIsOutOfRangeError(
			"aerial distance from depot", kernel.RoundDistance(aerialKm), 0, limit)
	}
	return location, nil
}
