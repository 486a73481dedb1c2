// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, apply the domain rules, commit, then publish events and metrics.
// Handlers that touch deliveries run inside the exclusive section shared with
// the virtual clock.
package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/settings"
)

// Engine state the handlers read or move. The stores themselves come in
// through ports.UnitOfWorkFactory.
type (
	// SettingsStore is the configuration owner, engine.ConfigStore in production.
	SettingsStore interface {
		Get() settings.Config
		Set(ctx context.Context, cfg settings.Config) error
		Reset(cfg settings.Config) error
	}

	// Clock is the virtual clock, engine.VirtualClock in production.
	Clock interface {
		Now() time.Time
		Advance(ctx context.Context, delta time.Duration) (time.Time, error)
	}
)
