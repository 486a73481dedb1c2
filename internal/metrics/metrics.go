// Package metrics exposes the engine counters and the HTTP request metrics
// as Prometheus collectors.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Engine counts what the dispatch core does. It implements ports.MetricsRecorder.
type Engine struct {
	deliveriesStarted  prometheus.Counter
	deliveriesClosed   *prometheus.CounterVec
	clockAdvances      prometheus.Counter
	reconcilerFailures prometheus.Counter
}

// NewEngine creates the engine counters and registers them with reg.
func NewEngine(reg prometheus.Registerer) (*Engine, error) {
	e := &Engine{
		deliveriesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deliveries_started_total",
			Help: "Total number of deliveries started by a pickup",
		}),
		deliveriesClosed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deliveries_closed_total",
				Help: "Total number of closed deliveries by end type and whether the reconciler forced the close",
			},
			[]string{"end_type", "forced"},
		),
		clockAdvances: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clock_advances_total",
			Help: "Total number of virtual clock advances",
		}),
		reconcilerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reconciler_failures_total",
			Help: "Total number of deliveries the reconciler failed to process",
		}),
	}

	for _, c := range []prometheus.Collector{
		e.deliveriesStarted, e.deliveriesClosed, e.clockAdvances, e.reconcilerFailures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) DeliveryStarted() { e.deliveriesStarted.Inc() }

func (e *Engine) DeliveryClosed(endType string, forced bool) {
	e.deliveriesClosed.WithLabelValues(endType, strconv.FormatBool(forced)).Inc()
}

func (e *Engine) ClockAdvanced()   { e.clockAdvances.Inc() }
func (e *Engine) ReconcileFailed() { e.reconcilerFailures.Inc() }

// Nop discards every measurement.
type Nop struct{}

func (Nop) DeliveryStarted()            {}
func (Nop) DeliveryClosed(string, bool) {}
func (Nop) ClockAdvanced()              {}
func (Nop) ReconcileFailed()            {}
