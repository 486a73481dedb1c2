package commands

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var ErrOrderHasDeliveries = errs.NewConflictError("order has delivery history, cancel it instead")

// DeleteOrderCommandHandler removes an order that was never picked up or cancelled.
type DeleteOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	section    *sync.Mutex
	logger     *slog.Logger
}

func NewDeleteOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	section *sync.Mutex,
	logger *slog.Logger,
) *DeleteOrderCommandHandler {
	return &DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		section:    section,
		logger:     logger.With("component", "delete_order"),
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.section.Lock()
	defer h.section.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}
	deliveries, err := uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if len(deliveries) > 0 {
		return ErrOrderHasDeliveries
	}

	if err = uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order deleted", "order_id", cmd.OrderID().String())
	return nil
}
