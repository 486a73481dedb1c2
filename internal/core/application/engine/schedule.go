package engine

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/core/domain/services"
)

// OrderState is the derived view of an order at one instant.
type OrderState struct {
	Status   order.Status
	Schedule order.ScheduleStatus
	// Latest is the delivery that determined Status, nil for untouched orders.
	Latest *delivery.Delivery
}

// ScheduleEvaluator derives status and schedule status of an order from its
// deliveries and one configuration snapshot.
type ScheduleEvaluator struct {
	calculator services.ScheduleCalculator
	estimator  ArrivalEstimator
}

func NewScheduleEvaluator(estimator ArrivalEstimator) ScheduleEvaluator {
	return ScheduleEvaluator{
		calculator: services.NewScheduleCalculator(),
		estimator:  estimator,
	}
}

// Evaluate computes the order's state at cfg.Clock.
func (e ScheduleEvaluator) Evaluate(
	ctx context.Context,
	cfg settings.Config,
	o *order.Order,
	deliveries []*delivery.Delivery,
) (OrderState, error) {
	latest := services.LatestDelivery(deliveries)
	state := OrderState{
		Status: services.DeriveOrderStatus(deliveries),
		Latest: latest,
	}

	var arrival time.Time
	if e.calculator.NeedsArrival(latest) {
		var err error
		arrival, err = e.estimator.ExpectedArrival(ctx, cfg, latest.DeliveryType(), o, latest)
		if err != nil {
			return OrderState{}, err
		}
	}

	schedule, err := e.calculator.Status(services.ScheduleInput{
		OpenedAt:        o.OpenedAt(),
		Config:          cfg,
		Delivery:        latest,
		ExpectedArrival: arrival,
		Now:             cfg.Clock,
	})
	if err != nil {
		return OrderState{}, err
	}
	state.Schedule = schedule

	return state, nil
}
