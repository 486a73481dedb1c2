package commands

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// DeliverOrderCommandHandler closes the courier's open delivery at the current
// virtual time. Deliveries scheduled to start after now are not considered open.
type DeliverOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	settings   SettingsStore
	section    *sync.Mutex
	notifier   engine.Notifier
	metrics    ports.MetricsRecorder
	logger     *slog.Logger
}

func NewDeliverOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	settings SettingsStore,
	section *sync.Mutex,
	notifier engine.Notifier,
	metrics ports.MetricsRecorder,
	logger *slog.Logger,
) *DeliverOrderCommandHandler {
	return &DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		section:    section,
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger.With("component", "deliver_order"),
	}
}

func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.section.Lock()
	defer h.section.Unlock()

	now := h.settings.Get().Clock

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierEntity, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	deliveries, err := uow.DeliveryRepository().GetByCourierID(ctx, courierEntity.ID())
	if err != nil {
		return err
	}

	current := services.ActiveDeliveryAt(deliveries, now)
	if current == nil {
		return delivery.ErrCourierHasNoActiveDelivery
	}
	if err = current.Close(cmd.EndType(), now); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Update(ctx, current); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.DeliveryClosed(cmd.EndType().String(), false)
	h.notifier.Notify(ctx, engine.NewDeliveryEvent(engine.EventDeliveryClosed, current, now, false))
	h.logger.InfoContext(ctx, "delivery closed",
		"delivery_id", current.ID().String(),
		"order_id", current.OrderID().String(),
		"courier_id", courierEntity.ID(),
		"end_type", cmd.EndType().String())

	return nil
}
