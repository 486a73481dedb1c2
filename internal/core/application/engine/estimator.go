package engine

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// ArrivalEstimator turns the pure arrival formula into a time by supplying
// the distance: the one recorded on the delivery, or a route lookup from the
// depot to the order.
type ArrivalEstimator struct {
	distances ports.DistanceProvider
}

func NewArrivalEstimator(distances ports.DistanceProvider) ArrivalEstimator {
	return ArrivalEstimator{distances: distances}
}

// RouteDistance measures the depot-to-order route for a delivery type, rounded to two decimals.
func (e ArrivalEstimator) RouteDistance(
	ctx context.Context,
	cfg settings.Config,
	deliveryType courier.DeliveryType,
	o *order.Order,
) (float64, error) {
	profile, err := deliveryType.Profile()
	if err != nil {
		return 0, err
	}

	km, err := e.distances.RouteDistance(ctx, cfg.CompanyLocation, o.Location(), profile)
	if err != nil {
		return 0, fmt.Errorf("route distance to order %s: %w", o.ID(), err)
	}
	return kernel.RoundDistance(km), nil
}

// ExpectedArrival estimates when a courier of deliveryType reaches o.
// With a delivery the trip starts at its start time, otherwise at the order's
// open time ("if it had been picked up right away").
func (e ArrivalEstimator) ExpectedArrival(
	ctx context.Context,
	cfg settings.Config,
	deliveryType courier.DeliveryType,
	o *order.Order,
	d *delivery.Delivery,
) (time.Time, error) {
	base := o.OpenedAt()
	if d != nil {
		base = d.StartedAt()
	}

	var distance float64
	if recorded, ok := deliveryDistance(d); ok {
		distance = recorded
	} else {
		measured, err := e.RouteDistance(ctx, cfg, deliveryType, o)
		if err != nil {
			return time.Time{}, err
		}
		distance = measured
	}

	return services.ExpectedArrival(deliveryType, distance, base, cfg)
}

func deliveryDistance(d *delivery.Delivery) (float64, bool) {
	if d == nil {
		return 0, false
	}
	return d.ActualDistance()
}
