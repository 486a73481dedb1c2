package commands

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/ports"
)

type UpdateCourierCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	section    *sync.Mutex
	logger     *slog.Logger
}

func NewUpdateCourierCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	section *sync.Mutex,
	logger *slog.Logger,
) *UpdateCourierCommandHandler {
	return &UpdateCourierCommandHandler{
		uowFactory: uowFactory,
		section:    section,
		logger:     logger.With("component", "update_courier"),
	}
}

// Handle stores the new attributes. A courier in the middle of a delivery
// keeps it: the delivery recorded its own type and distance when it started.
func (h *UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	current, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	details := cmd.Details()
	if details.EmploymentStart.IsZero() {
		details.EmploymentStart = current.EmploymentStart()
	}

	updated, err := courier.NewCourier(
		current.ID(),
		cmd.Contact(),
		details.DeliveryType,
		details.EmploymentStart,
		details.PersonalMaxDistanceKm,
		details.Active,
	)
	if err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, updated); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "courier updated",
		"courier_id", updated.ID(),
		"active", updated.IsActive())
	return nil
}
