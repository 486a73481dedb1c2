package services

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/pkg/errs"
)

// ScheduleInput is everything needed to place an order on its schedule.
type ScheduleInput struct {
	// OpenedAt is when the order was opened.
	OpenedAt time.Time
	// Config is a single snapshot; MaxDeliveryTimeSpan and RiskRange are read from it.
	Config settings.Config
	// Delivery is the order's latest delivery (see LatestDelivery), nil if none.
	Delivery *delivery.Delivery
	// ExpectedArrival of Delivery. Required whenever NeedsArrival(Delivery) is true.
	ExpectedArrival time.Time
	// Now is the current virtual time.
	Now time.Time
}

// ScheduleCalculator classifies orders as OnTime, AtRisk or Late.
//
// The absolute deadline is OpenedAt + MaxDeliveryTimeSpan and is the only thing
// that makes an order Late. The risk window decides between OnTime and AtRisk:
// before pickup it is measured back from the deadline, during a delivery from
// the earlier of the expected arrival and the deadline. Closed orders keep the
// status they had when their last delivery ended.
type ScheduleCalculator struct{}

func NewScheduleCalculator() ScheduleCalculator {
	return ScheduleCalculator{}
}

// NeedsArrival reports whether Status will use an expected arrival for d.
func (s ScheduleCalculator) NeedsArrival(d *delivery.Delivery) bool {
	if d == nil || d.IsAdministrative() {
		return false
	}
	if d.IsActive() {
		return true
	}
	endType, _ := d.EndType()
	return endType.OrderStatus().IsTerminal()
}

func (s ScheduleCalculator) Status(in ScheduleInput) (order.ScheduleStatus, error) {
	deadline := in.OpenedAt.Add(in.Config.MaxDeliveryTimeSpan)
	risk := in.Config.RiskRange
	d := in.Delivery

	switch {
	case d == nil:
		return s.beforePickup(deadline, risk, in.Now), nil

	case d.IsActive():
		if in.ExpectedArrival.IsZero() {
			return order.UnknownScheduleStatus, errs.NewMissingPropertyError("expected arrival", d.ID())
		}
		return s.inFlight(deadline, in.ExpectedArrival, risk, in.Now), nil
	}

	endedAt, _ := d.EndedAt()
	endType, _ := d.EndType()

	switch {
	case !endType.OrderStatus().IsTerminal():
		// the order went back into the pool
		return s.beforePickup(deadline, risk, in.Now), nil
	case d.IsAdministrative():
		return s.beforePickup(deadline, risk, endedAt), nil
	case in.ExpectedArrival.IsZero():
		return order.UnknownScheduleStatus, errs.NewMissingPropertyError("expected arrival", d.ID())
	default:
		return s.inFlight(deadline, in.ExpectedArrival, risk, endedAt), nil
	}
}

func (s ScheduleCalculator) beforePickup(deadline time.Time, risk time.Duration, now time.Time) order.ScheduleStatus {
	switch {
	case !now.Before(deadline):
		return order.Late
	case !now.Before(deadline.Add(-risk)):
		return order.AtRisk
	default:
		return order.OnTime
	}
}

func (s ScheduleCalculator) inFlight(
	deadline, expectedArrival time.Time,
	risk time.Duration,
	now time.Time,
) order.ScheduleStatus {
	if !now.Before(deadline) {
		return order.Late
	}

	target := expectedArrival
	if deadline.Before(target) {
		target = deadline
	}
	if !now.Before(target.Add(-risk)) {
		return order.AtRisk
	}
	return order.OnTime
}
