package commands

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var ErrOrderIsNotOpen = errs.NewConflictError("order can only be changed while it is open")

// UpdateOrderCommandHandler edits an order nobody is delivering. The id and
// the open time never change; a new address is geocoded and checked against
// the delivery area like on creation.
type UpdateOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	settings   SettingsStore
	section    *sync.Mutex
	geocoder   ports.DistanceProvider
	logger     *slog.Logger
}

func NewUpdateOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	settings SettingsStore,
	section *sync.Mutex,
	geocoder ports.DistanceProvider,
	logger *slog.Logger,
) *UpdateOrderCommandHandler {
	return &UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		section:    section,
		geocoder:   geocoder,
		logger:     logger.With("component", "update_order"),
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.section.Lock()
	defer h.section.Unlock()

	cfg := h.settings.Get()
	details := cmd.Details()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	deliveries, err := uow.DeliveryRepository().GetByOrderID(ctx, current.ID())
	if err != nil {
		return err
	}
	if services.DeriveOrderStatus(deliveries) != order.Open {
		return ErrOrderIsNotOpen
	}

	location := current.Location()
	if details.Address != current.Address() {
		if location, err = locateOrder(ctx, h.geocoder, cfg, details.Address); err != nil {
			return err
		}
	}

	updated, err := order.NewOrder(
		current.ID(),
		details.Type,
		details.Address,
		location,
		details.Parcel,
		details.Customer,
		current.OpenedAt(),
	)
	if err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, updated); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order updated", "order_id", updated.ID().String())
	return nil
}
