package commands

import (
	"context"
	"time"
)

// AdvanceClockCommandHandler moves the virtual clock. The clock itself runs
// the reconciler and the observers.
type AdvanceClockCommandHandler struct {
	clock Clock
}

func NewAdvanceClockCommandHandler(clock Clock) *AdvanceClockCommandHandler {
	return &AdvanceClockCommandHandler{clock: clock}
}

// Handle returns the new clock value.
func (h *AdvanceClockCommandHandler) Handle(ctx context.Context, cmd AdvanceClockCommand) (time.Time, error) {
	if err := cmd.Validate(); err != nil {
		return time.Time{}, err
	}

	return h.clock.Advance(ctx, cmd.Delta())
}
