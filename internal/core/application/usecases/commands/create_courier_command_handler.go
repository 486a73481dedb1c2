package commands

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/ports"
)

// CreateCourierCommandHandler stores a new courier under the next free id.
type CreateCourierCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	settings   SettingsStore
	section    *sync.Mutex
	logger     *slog.Logger
}

func NewCreateCourierCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	settings SettingsStore,
	section *sync.Mutex,
	logger *slog.Logger,
) *CreateCourierCommandHandler {
	return &CreateCourierCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		section:    section,
		logger:     logger.With("component", "create_courier"),
	}
}

// Handle returns the id assigned to the courier. Id allocation and the insert
// happen inside the exclusive section.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	h.section.Lock()
	defer h.section.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	existing, err := courierRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	id := nextCourierID(existing)

	details := cmd.Details()
	if details.EmploymentStart.IsZero() {
		details.EmploymentStart = h.settings.Get().Clock
	}

	courierEntity, err := courier.NewCourier(
		id,
		cmd.Contact(),
		details.DeliveryType,
		details.EmploymentStart,
		details.PersonalMaxDistanceKm,
		details.Active,
	)
	if err != nil {
		return 0, err
	}

	if err = courierRepo.Add(ctx, courierEntity); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.logger.InfoContext(ctx, "courier created",
		"courier_id", id,
		"delivery_type", details.DeliveryType.String())
	return id, nil
}

func nextCourierID(couriers []*courier.Courier) int64 {
	var highest int64
	for _, c := range couriers {
		highest = max(highest, c.ID())
	}
	return highest + 1
}
