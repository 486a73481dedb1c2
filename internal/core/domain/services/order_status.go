package services

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/order"
)

// DeriveOrderStatus computes an order's status from all of its deliveries.
//
//   - no deliveries: Open
//   - an active delivery: InProgress
//   - otherwise the outcome of the most recently ended delivery decides,
//     see delivery.EndType.OrderStatus
//
// The result depends on nothing but the slice contents.
func DeriveOrderStatus(deliveries []*delivery.Delivery) order.Status {
	latest := LatestDelivery(deliveries)
	if latest == nil {
		return order.Open
	}
	if latest.IsActive() {
		return order.InProgress
	}
	endType, _ := latest.EndType()
	return endType.OrderStatus()
}

// LatestDelivery returns the delivery that determines an order's status:
// the active one if any, else the one that ended last, ties broken by the
// later start. It returns nil for an empty history.
func LatestDelivery(deliveries []*delivery.Delivery) *delivery.Delivery {
	if active := ActiveDelivery(deliveries); active != nil {
		return active
	}

	var (
		latest      *delivery.Delivery
		latestEnded time.Time
	)
	for _, d := range deliveries {
		endedAt, closed := d.EndedAt()
		if !closed {
			continue
		}
		if latest == nil ||
			endedAt.After(latestEnded) ||
			(endedAt.Equal(latestEnded) && d.StartedAt().After(latest.StartedAt())) {
			latest, latestEnded = d, endedAt
		}
	}
	return latest
}

// ActiveDelivery returns the delivery without an end, or nil.
// Should more than one exist the most recently started is returned.
func ActiveDelivery(deliveries []*delivery.Delivery) *delivery.Delivery {
	var active *delivery.Delivery
	for _, d := range deliveries {
		if !d.IsActive() {
			continue
		}
		if active == nil || d.StartedAt().After(active.StartedAt()) {
			active = d
		}
	}
	return active
}

// ActiveDeliveryAt is ActiveDelivery restricted to deliveries already started at now.
func ActiveDeliveryAt(deliveries []*delivery.Delivery, now time.Time) *delivery.Delivery {
	var started []*delivery.Delivery
	for _, d := range deliveries {
		if d.HasStartedBy(now) {
			started = append(started, d)
		}
	}
	return ActiveDelivery(started)
}
