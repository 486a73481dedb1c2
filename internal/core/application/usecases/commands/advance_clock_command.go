package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAdvanceClockCommandIsNotConstructed = errors.New(
		"AdvanceClockCommand must be created via NewAdvanceClockCommand constructor",
	)
	ErrDeltaIsNegative = errs.NewValueIsInvalidErrorWithCause("delta", errors.New("clock can only move forward"))
)

type AdvanceClockCommand struct {
	delta time.Duration

	guard guard.ConstructorGuard
}

// NewAdvanceClockCommand rejects negative deltas; the clock never goes back.
func NewAdvanceClockCommand(delta time.Duration) (AdvanceClockCommand, error) {
	if delta < 0 {
		return AdvanceClockCommand{}, ErrDeltaIsNegative
	}

	return AdvanceClockCommand{
		delta: delta,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceClockCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceClockCommandIsNotConstructed)
}

func (c AdvanceClockCommand) Delta() time.Duration {
	return c.delta
}
