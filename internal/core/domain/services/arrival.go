package services

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/pkg/errs"
)

// ExpectedArrival returns base plus the travel time for distanceKm at the
// configured average speed of deliveryType.
//
// An unrecognized delivery type is an invariant violation reported as a
// MissingPropertyError; it is never replaced by a default speed.
func ExpectedArrival(
	deliveryType courier.DeliveryType,
	distanceKm float64,
	base time.Time,
	cfg settings.Config,
) (time.Time, error) {
	speed, err := cfg.SpeedFor(deliveryType)
	if err != nil {
		return time.Time{}, err
	}
	if !(speed > 0) {
		return time.Time{}, errs.NewValueIsOutOfRangeError("average speed", speed, "> 0", "+Inf")
	}
	if distanceKm < 0 {
		return time.Time{}, errs.NewValueIsInvalidError("distance")
	}

	travel := time.Duration(distanceKm / speed * float64(time.Hour))
	return base.Add(travel), nil
}
