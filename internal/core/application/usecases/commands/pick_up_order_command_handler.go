package commands

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// PickUpOrderCommandHandler assigns an order to a courier by opening a delivery.
//
// The checks run in a fixed order so callers always see the first rule that
// failed: courier exists, courier is active, courier is free, order exists,
// order is open, order is within the courier's personal reach. Only then is
// the route measured; a provider failure creates nothing.
//
// Example:
//
//	handler := NewPickUpOrderCommandHandler(uowFactory, configStore, section, estimator, notifier, metrics, logger)
//	cmd, _ := NewPickUpOrderCommand(7, orderID)
//	deliveryID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, delivery.ErrCourierAlreadyHasDelivery):
//	    log.Println("courier is busy")
//	case err != nil:
//	    log.Printf("pickup failed: %v", err)
//	}
type PickUpOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	settings   SettingsStore
	section    *sync.Mutex
	estimator  engine.ArrivalEstimator
	policy     services.PickupPolicy
	notifier   engine.Notifier
	metrics    ports.MetricsRecorder
	logger     *slog.Logger
}

func NewPickUpOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	settings SettingsStore,
	section *sync.Mutex,
	estimator engine.ArrivalEstimator,
	notifier engine.Notifier,
	metrics ports.MetricsRecorder,
	logger *slog.Logger,
) *PickUpOrderCommandHandler {
	return &PickUpOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		section:    section,
		estimator:  estimator,
		policy:     services.NewPickupPolicy(),
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger.With("component", "pick_up_order"),
	}
}

// Handle opens the delivery and returns its id.
func (h *PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	h.section.Lock()
	defer h.section.Unlock()

	cfg := h.settings.Get()
	now := cfg.Clock

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierEntity, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return kernel.UUID{}, err
	}
	courierDeliveries, err := uow.DeliveryRepository().GetByCourierID(ctx, courierEntity.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = h.policy.CheckCourier(courierEntity, courierDeliveries); err != nil {
		return kernel.UUID{}, err
	}

	orderEntity, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}
	orderDeliveries, err := uow.DeliveryRepository().GetByOrderID(ctx, orderEntity.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	aerialKm, err := cfg.CompanyLocation.AerialDistance(orderEntity.Location())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = h.policy.CheckOrder(courierEntity, orderDeliveries, aerialKm, cfg.MaxGeneralDeliveryDistanceKm); err != nil {
		return kernel.UUID{}, err
	}

	routeKm, err := h.estimator.RouteDistance(ctx, cfg, courierEntity.DeliveryType(), orderEntity)
	if err != nil {
		return kernel.UUID{}, err
	}

	deliveryEntity, err := h.policy.Start(kernel.NewUUID(), courierEntity, orderEntity, now, routeKm)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.DeliveryRepository().Add(ctx, deliveryEntity); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.metrics.DeliveryStarted()
	h.notifier.Notify(ctx, engine.NewDeliveryEvent(engine.EventDeliveryStarted, deliveryEntity, now, false))
	h.logger.InfoContext(ctx, "order picked up",
		"delivery_id", deliveryEntity.ID().String(),
		"order_id", orderEntity.ID().String(),
		"courier_id", courierEntity.ID(),
		"route_km", routeKm)

	return deliveryEntity.ID(), nil
}
