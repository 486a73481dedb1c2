package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ClockAdvancer moves the virtual clock, commands.AdvanceClockCommandHandler in production.
type ClockAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceClockCommand) (time.Time, error)
}

// ClockTickJob advances the virtual clock by a fixed step on a cron schedule,
// which lets an operator run the simulation unattended.
type ClockTickJob struct {
	handler ClockAdvancer
	spec    string
	step    time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewClockTickJob creates the job. spec is a six-field cron expression
// (seconds first), for example "*/10 * * * * *".
func NewClockTickJob(handler ClockAdvancer, spec string, step time.Duration, logger *slog.Logger) *ClockTickJob {
	return &ClockTickJob{
		handler: handler,
		spec:    spec,
		step:    step,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "clock_tick_job"),
	}
}

// Start registers the tick and starts the scheduler.
func (j *ClockTickJob) Start() error {
	if j.step <= 0 {
		return fmt.Errorf("clock tick step must be positive, got %s", j.step)
	}
	if _, err := j.cron.AddFunc(j.spec, func() { j.tick(context.Background()) }); err != nil {
		return fmt.Errorf("schedule clock tick %q: %w", j.spec, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Clock tick job started", "spec", j.spec, "step", j.step)
	return nil
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *ClockTickJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Clock tick job stopped")
}

func (j *ClockTickJob) tick(ctx context.Context) {
	cmd, err := commands.NewAdvanceClockCommand(j.step)
	if err != nil {
		j.logger.ErrorContext(ctx, "Clock tick rejected", "error", err)
		return
	}

	now, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Clock tick failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Clock advanced", "now", now)
}
