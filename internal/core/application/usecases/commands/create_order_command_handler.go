package commands

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// CreateOrderCommandHandler geocodes the destination, checks it lies within
// the general delivery area and stores the order, opened at the current
// virtual time. Geocoding runs before the exclusive section is taken.
type CreateOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	settings   SettingsStore
	section    *sync.Mutex
	geocoder   ports.DistanceProvider
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	settings SettingsStore,
	section *sync.Mutex,
	geocoder ports.DistanceProvider,
	logger *slog.Logger,
) *CreateOrderCommandHandler {
	return &CreateOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		section:    section,
		geocoder:   geocoder,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle returns the id of the new order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	cfg := h.settings.Get()
	details := cmd.Details()

	location, err := locateOrder(ctx, h.geocoder, cfg, details.Address)
	if err != nil {
		return kernel.UUID{}, err
	}

	h.section.Lock()
	defer h.section.Unlock()

	orderEntity, err := order.NewOrder(
		kernel.NewUUID(),
		details.Type,
		details.Address,
		location,
		details.Parcel,
		details.Customer,
		h.settings.Get().Clock,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, orderEntity); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", orderEntity.ID().String(),
		"type", details.Type.String(),
		"location", location.String())
	return orderEntity.ID(), nil
}
