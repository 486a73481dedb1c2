package commands

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var ErrCourierIsOnDelivery = errs.NewConflictError("courier has an active delivery")

// DeleteCourierCommandHandler removes a courier who is not on a delivery.
// Closed deliveries keep the courier id as history.
type DeleteCourierCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	section    *sync.Mutex
	logger     *slog.Logger
}

func NewDeleteCourierCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	section *sync.Mutex,
	logger *slog.Logger,
) *DeleteCourierCommandHandler {
	return &DeleteCourierCommandHandler{
		uowFactory: uowFactory,
		section:    section,
		logger:     logger.With("component", "delete_courier"),
	}
}

func (h *DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
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

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return err
	}
	deliveries, err := uow.DeliveryRepository().GetByCourierID(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if services.ActiveDelivery(deliveries) != nil {
		return ErrCourierIsOnDelivery
	}

	if err = uow.CourierRepository().Delete(ctx, cmd.CourierID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "courier deleted", "courier_id", cmd.CourierID())
	return nil
}
