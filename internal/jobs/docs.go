// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution
// expressions.
//
// # Available Jobs
//
// ClockTickJob advances the virtual clock by a fixed step on a schedule. Each
// tick goes through the regular advance command, so the reconciliation sweep
// runs exactly as it does for an operator request. The job is optional and only
// created when CLOCK_TICK_SPEC is set.
//
// # Usage
//
//	tick := jobs.NewClockTickJob(advanceClockHandler, "*/10 * * * * *", time.Minute, logger)
//	jobManager := jobs.NewJobManager(tick)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed tick is logged and the next tick runs as scheduled. Ticks never
// overlap: a tick still running when the next one is due causes that one to
// be skipped.
package jobs
