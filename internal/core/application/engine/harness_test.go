package engine_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/core/ports"
	"dispatch/internal/metrics"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type harness struct {
	uowFactory *memory.UnitOfWorkFactory
	distances  *testutil.Distances
	publisher  *testutil.Publisher
	config     *engine.ConfigStore
	reconciler *engine.Reconciler
	clock      *engine.VirtualClock
}

func newHarness(t *testing.T, recorder ports.MetricsRecorder) *harness {
	t.Helper()
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	h := &harness{
		uowFactory: memory.NewUnitOfWorkFactory(memory.NewStore()),
		distances:  testutil.NewDistances(),
		publisher:  &testutil.Publisher{},
	}
	logger := testutil.Logger()

	config, err := engine.NewConfigStore(testutil.Config(), h.distances, logger)
	require.NoError(t, err)
	h.config = config

	notifier := engine.NewNotifier(h.publisher, logger)
	h.reconciler = engine.NewReconciler(
		h.uowFactory,
		config,
		engine.NewArrivalEstimator(h.distances),
		rand.New(rand.NewPCG(1, 2)),
		notifier,
		recorder,
		logger,
	)
	h.clock = engine.NewVirtualClock(config, &sync.Mutex{}, h.reconciler, notifier, recorder, logger)
	return h
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) DeliveryStarted() { m.Called() }
func (m *MockMetrics) DeliveryClosed(endType string, forced bool) {
	m.Called(endType, forced)
}
func (m *MockMetrics) ClockAdvanced()   { m.Called() }
func (m *MockMetrics) ReconcileFailed() { m.Called() }

type MockDistanceProvider struct{ mock.Mock }

func (m *MockDistanceProvider) Geocode(ctx context.Context, address string) (kernel.Coordinates, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.Coordinates), args.Error(1)
}

func (m *MockDistanceProvider) RouteDistance(
	ctx context.Context,
	from, to kernel.Coordinates,
	profile kernel.RouteProfile,
) (float64, error) {
	args := m.Called(ctx, from, to, profile)
	return args.Get(0).(float64), args.Error(1)
}

// counter returns an observer callback and a reader of how often it ran.
func counter() (func(), func() int) {
	var calls atomic.Int32
	return func() { calls.Add(1) }, func() int { return int(calls.Load()) }
}

func withConfig(t *testing.T, h *harness, mutate func(*settings.Config)) {
	t.Helper()
	cfg := h.config.Get()
	mutate(&cfg)
	require.NoError(t, h.config.Reset(cfg))
}
