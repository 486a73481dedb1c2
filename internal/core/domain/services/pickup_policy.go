package services

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// PickupPolicy holds the eligibility rules of a pickup. The checks are split
// in two so the caller can load the order only after the courier passed.
type PickupPolicy struct{}

func NewPickupPolicy() PickupPolicy {
	return PickupPolicy{}
}

// CheckCourier fails for inactive couriers and for couriers that already
// hold an active delivery.
func (p PickupPolicy) CheckCourier(c *courier.Courier, courierDeliveries []*delivery.Delivery) error {
	if err := c.EnsureActive(); err != nil {
		return err
	}
	if ActiveDelivery(courierDeliveries) != nil {
		return delivery.ErrCourierAlreadyHasDelivery
	}
	return nil
}

// CheckOrder fails for orders that are not Open and for orders out of reach.
// aerialKm is the depot-to-order great-circle distance. A courier's personal
// limit, when set, decides reach on its own, looser or stricter than
// generalMaxKm; otherwise generalMaxKm applies. A nil generalMaxKm is no limit.
func (p PickupPolicy) CheckOrder(
	c *courier.Courier,
	orderDeliveries []*delivery.Delivery,
	aerialKm float64,
	generalMaxKm *float64,
) error {
	switch status := DeriveOrderStatus(orderDeliveries); status {
	case order.Open:
	case order.InProgress:
		return delivery.ErrOrderAlreadyAssigned
	case order.Delivered, order.Refused, order.Cancelled:
		return delivery.ErrDeliveryAlreadyClosed
	default:
		return errs.NewMissingPropertyError("order status", status)
	}

	if _, personal := c.PersonalMaxDistance(); personal {
		return c.EnsureCanReach(aerialKm)
	}
	if generalMaxKm != nil && aerialKm > *generalMaxKm {
		return errs.NewValueIsOutOfRangeError(
			"aerial distance from depot", kernel.RoundDistance(aerialKm), 0, *generalMaxKm)
	}
	return nil
}

// Start creates the active delivery for an eligible pickup.
// routeKm is rounded to two decimals before it is recorded.
func (p PickupPolicy) Start(
	id kernel.UUID,
	c *courier.Courier,
	o *order.Order,
	startedAt time.Time,
	routeKm float64,
) (*delivery.Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	distance := kernel.RoundDistance(routeKm)
	return delivery.NewDelivery(id, o.ID(), c.ID(), c.DeliveryType(), startedAt, &distance)
}
