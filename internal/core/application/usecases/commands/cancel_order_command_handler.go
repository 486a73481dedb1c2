package commands

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order on behalf of the company.
//
// An open order gets a closed cancellation record without a courier, an
// order in progress has its active delivery closed as Cancelled. Orders that
// already reached a terminal state cannot be cancelled.
type CancelOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	settings   SettingsStore
	section    *sync.Mutex
	notifier   engine.Notifier
	metrics    ports.MetricsRecorder
	logger     *slog.Logger
}

func NewCancelOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	settings SettingsStore,
	section *sync.Mutex,
	notifier engine.Notifier,
	metrics ports.MetricsRecorder,
	logger *slog.Logger,
) *CancelOrderCommandHandler {
	return &CancelOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		section:    section,
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger.With("component", "cancel_order"),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderEntity, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	deliveries, err := uow.DeliveryRepository().GetByOrderID(ctx, orderEntity.ID())
	if err != nil {
		return err
	}

	var closed *delivery.Delivery
	switch status := services.DeriveOrderStatus(deliveries); status {
	case order.Open:
		if closed, err = delivery.NewAdministrativeCancellation(kernel.NewUUID(), orderEntity.ID(), now); err != nil {
			return err
		}
		err = uow.DeliveryRepository().Add(ctx, closed)
	case order.InProgress:
		closed = services.ActiveDelivery(deliveries)
		if err = closed.Close(delivery.Cancelled, now); err != nil {
			return err
		}
		err = uow.DeliveryRepository().Update(ctx, closed)
	case order.Delivered, order.Refused, order.Cancelled:
		return delivery.ErrDeliveryAlreadyClosed
	default:
		return errs.NewMissingPropertyError("order status", status)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.DeliveryClosed(delivery.Cancelled.String(), false)
	h.notifier.Notify(ctx, engine.NewDeliveryEvent(engine.EventDeliveryClosed, closed, now, false))
	h.logger.InfoContext(ctx, "order cancelled",
		"order_id", orderEntity.ID().String(),
		"delivery_id", closed.ID().String(),
		"administrative", closed.IsAdministrative())

	return nil
}
