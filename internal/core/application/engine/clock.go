package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var errNegativeDelta = errors.New("clock can only move forward")

// VirtualClock is the simulated time of the engine. It moves only when
// Advance is called; nothing in the process advances it implicitly.
type VirtualClock struct {
	config     *ConfigStore
	section    *sync.Mutex
	reconciler *Reconciler
	notifier   Notifier
	metrics    ports.MetricsRecorder
	observers  observers
	logger     *slog.Logger
}

func NewVirtualClock(
	config *ConfigStore,
	section *sync.Mutex,
	reconciler *Reconciler,
	notifier Notifier,
	metrics ports.MetricsRecorder,
	logger *slog.Logger,
) *VirtualClock {
	return &VirtualClock{
		config:     config,
		section:    section,
		reconciler: reconciler,
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger.With("component", "virtual_clock"),
	}
}

// Now returns the current virtual time.
func (c *VirtualClock) Now() time.Time {
	return c.config.Now()
}

// Advance moves the clock forward by delta and returns the new time.
//
// A negative delta fails with invalid input and leaves the clock alone.
// Otherwise, inside the exclusive section, the clock is set, the reconciler
// sweeps the interval and the courier hook runs. Clock observers fire after
// the section is released.
func (c *VirtualClock) Advance(ctx context.Context, delta time.Duration) (time.Time, error) {
	if delta < 0 {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("delta", errNegativeDelta)
	}

	c.section.Lock()
	oldClock := c.config.Now()
	newClock := oldClock.Add(delta)
	c.config.setClock(newClock)
	result := c.reconciler.Sweep(ctx, oldClock, newClock)
	c.reconciler.UpdateCouriers(ctx, oldClock, newClock)
	c.section.Unlock()

	c.metrics.ClockAdvanced()
	c.notifier.Notify(ctx, NewClockAdvancedEvent(oldClock, newClock))
	c.logger.InfoContext(ctx, "clock advanced",
		"from", oldClock,
		"to", newClock,
		"closed_deliveries", result.Closed)

	c.observers.notify()
	return newClock, nil
}

// Subscribe registers fn to run after every successful advance.
func (c *VirtualClock) Subscribe(fn func()) Subscription {
	return c.observers.subscribe(fn)
}

// Unsubscribe removes a callback. Repeated calls are no-ops.
func (c *VirtualClock) Unsubscribe(sub Subscription) {
	c.observers.unsubscribe(sub)
}
