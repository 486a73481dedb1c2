package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Reconciler closes deliveries nobody finished in time.
//
// A delivery is overdue once the clock reaches its expected arrival plus half
// the risk range. Overdue deliveries are closed at the new clock value with an
// outcome drawn uniformly from every end type, which models an unattended
// order ending in an unpredictable way.
//
// Sweep must run inside the exclusive section; the clock calls it there.
type Reconciler struct {
	uowFactory ports.UnitOfWorkFactory
	config     *ConfigStore
	estimator  ArrivalEstimator
	random     *rand.Rand
	notifier   Notifier
	metrics    ports.MetricsRecorder
	logger     *slog.Logger
}

func NewReconciler(
	uowFactory ports.UnitOfWorkFactory,
	config *ConfigStore,
	estimator ArrivalEstimator,
	random *rand.Rand,
	notifier Notifier,
	metrics ports.MetricsRecorder,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		uowFactory: uowFactory,
		config:     config,
		estimator:  estimator,
		random:     random,
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger.With("component", "reconciler"),
	}
}

// SweepResult summarizes one sweep.
type SweepResult struct {
	Checked int
	Closed  int
	Failed  int
}

// Sweep force-closes every active delivery that is overdue at newClock.
// Failures on one delivery are logged and counted; the sweep goes on with the rest.
// Deliveries that are already closed are skipped, so repeating a sweep is harmless.
func (r *Reconciler) Sweep(ctx context.Context, oldClock, newClock time.Time) SweepResult {
	var result SweepResult
	cfg := r.config.Get()

	active, err := r.uowFactory.Create().DeliveryRepository().GetAllActive(ctx)
	if err != nil {
		r.metrics.ReconcileFailed()
		r.logger.ErrorContext(ctx, "failed to list active deliveries", "error", err)
		result.Failed++
		return result
	}

	for _, d := range active {
		result.Checked++

		closed, err := r.reconcile(ctx, cfg, d, newClock)
		if err != nil {
			result.Failed++
			r.metrics.ReconcileFailed()
			r.logger.ErrorContext(ctx, "failed to reconcile delivery",
				"delivery_id", d.ID().String(),
				"order_id", d.OrderID().String(),
				"kind", errs.KindOf(err).String(),
				"error", err)
			continue
		}
		if closed {
			result.Closed++
		}
	}

	r.logger.InfoContext(ctx, "sweep finished",
		"from", oldClock,
		"to", newClock,
		"checked", result.Checked,
		"closed", result.Closed,
		"failed", result.Failed)

	return result
}

// UpdateCouriers is the hook for courier housekeeping on clock advances.
// TODO: deactivate couriers idle for longer than InactivityRange once operations define what "idle" means.
func (r *Reconciler) UpdateCouriers(_ context.Context, _, _ time.Time) {}

func (r *Reconciler) reconcile(
	ctx context.Context,
	cfg settings.Config,
	candidate *delivery.Delivery,
	now time.Time,
) (bool, error) {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	d, err := uow.DeliveryRepository().Get(ctx, candidate.ID())
	if err != nil {
		return false, err
	}
	if !d.IsActive() {
		return false, nil
	}

	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		return false, err
	}

	arrival, err := r.estimator.ExpectedArrival(ctx, cfg, d.DeliveryType(), o, d)
	if err != nil {
		return false, err
	}
	if now.Before(arrival.Add(cfg.RiskRange / 2)) {
		return false, nil
	}

	endTypes := delivery.EndTypes()
	endType := endTypes[r.random.IntN(len(endTypes))]
	if err = d.Close(endType, now); err != nil {
		return false, err
	}
	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return false, err
	}
	if err = uow.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit forced close: %w", err)
	}

	r.metrics.DeliveryClosed(endType.String(), true)
	r.notifier.Notify(ctx, NewDeliveryEvent(EventDeliveryClosed, d, now, true))
	r.logger.InfoContext(ctx, "delivery closed by reconciler",
		"delivery_id", d.ID().String(),
		"courier_id", d.CourierID(),
		"end_type", endType.String(),
		"expected_arrival", arrival)

	return true, nil
}
