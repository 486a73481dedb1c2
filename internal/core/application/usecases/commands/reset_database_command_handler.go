package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/core/ports"
)

type ResetDatabaseCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	settings   SettingsStore
	section    *sync.Mutex
	initial    settings.Config
	logger     *slog.Logger
}

// NewResetDatabaseCommandHandler keeps a copy of initial, the configuration
// the process started with, to restore on every reset.
func NewResetDatabaseCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	settings SettingsStore,
	section *sync.Mutex,
	initial settings.Config,
	logger *slog.Logger,
) *ResetDatabaseCommandHandler {
	return &ResetDatabaseCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		section:    section,
		initial:    initial.Clone(),
		logger:     logger.With("component", "reset_database"),
	}
}

func (h *ResetDatabaseCommandHandler) Handle(ctx context.Context, cmd ResetDatabaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.section.Lock()
	defer h.section.Unlock()

	return h.reset(ctx)
}

// reset expects the caller to hold the section.
func (h *ResetDatabaseCommandHandler) reset(ctx context.Context) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Deliveries reference orders, so they go first.
	if err := uow.DeliveryRepository().DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear deliveries: %w", err)
	}
	if err := uow.OrderRepository().DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	if err := uow.CourierRepository().DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear couriers: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := h.settings.Reset(h.initial); err != nil {
		return fmt.Errorf("restore configuration: %w", err)
	}

	h.logger.InfoContext(ctx, "database reset", "clock", h.initial.Clock)
	return nil
}
