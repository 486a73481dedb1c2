package commands_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/metrics"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// env wires the command handlers to an in-memory store and the real engine.
type env struct {
	uowFactory *memory.UnitOfWorkFactory
	distances  *testutil.Distances
	publisher  *testutil.Publisher
	config     *engine.ConfigStore
	clock      *engine.VirtualClock
	section    *sync.Mutex
	notifier   engine.Notifier
	estimator  engine.ArrivalEstimator
}

func newEnv(t *testing.T) *env {
	t.Helper()
	logger := testutil.Logger()

	e := &env{
		uowFactory: memory.NewUnitOfWorkFactory(memory.NewStore()),
		distances:  testutil.NewDistances(),
		publisher:  &testutil.Publisher{},
		section:    &sync.Mutex{},
	}
	e.distances.Detour = 1

	config, err := engine.NewConfigStore(testutil.Config(), e.distances, logger)
	require.NoError(t, err)
	e.config = config
	e.notifier = engine.NewNotifier(e.publisher, logger)
	e.estimator = engine.NewArrivalEstimator(e.distances)

	reconciler := engine.NewReconciler(
		e.uowFactory, config, e.estimator, rand.New(rand.NewPCG(7, 7)), e.notifier, metrics.Nop{}, logger)
	e.clock = engine.NewVirtualClock(config, e.section, reconciler, e.notifier, metrics.Nop{}, logger)
	return e
}

func (e *env) pickUpHandler(recorder ports.MetricsRecorder) *commands.PickUpOrderCommandHandler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return commands.NewPickUpOrderCommandHandler(
		e.uowFactory, e.config, e.section, e.estimator, e.notifier, recorder, testutil.Logger())
}

func (e *env) deliverHandler() *commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(
		e.uowFactory, e.config, e.section, e.notifier, metrics.Nop{}, testutil.Logger())
}

func (e *env) addCourier(t *testing.T, c *courier.Courier) *courier.Courier {
	t.Helper()
	require.NoError(t, e.uowFactory.Create().CourierRepository().Add(t.Context(), c))
	return c
}

func (e *env) addOrder(t *testing.T, o *order.Order) *order.Order {
	t.Helper()
	require.NoError(t, e.uowFactory.Create().OrderRepository().Add(t.Context(), o))
	return o
}

func (e *env) pickUp(t *testing.T, courierID int64, orderID kernel.UUID) (kernel.UUID, error) {
	t.Helper()
	cmd, err := commands.NewPickUpOrderCommand(courierID, orderID)
	require.NoError(t, err)
	return e.pickUpHandler(nil).Handle(t.Context(), cmd)
}

func (e *env) deliver(t *testing.T, courierID int64, endType delivery.EndType) error {
	t.Helper()
	cmd, err := commands.NewDeliverOrderCommand(courierID, endType)
	require.NoError(t, err)
	return e.deliverHandler().Handle(t.Context(), cmd)
}

func (e *env) deliveries(t *testing.T, orderID kernel.UUID) []*delivery.Delivery {
	t.Helper()
	list, err := e.uowFactory.Create().DeliveryRepository().GetByOrderID(t.Context(), orderID)
	require.NoError(t, err)
	return list
}

func (e *env) status(t *testing.T, orderID kernel.UUID) order.Status {
	t.Helper()
	return services.DeriveOrderStatus(e.deliveries(t, orderID))
}

// orderAtKm places an order due north of the depot at roughly km aerial distance.
func orderAtKm(t *testing.T, km float64) *order.Order {
	t.Helper()
	depot := testutil.Depot()
	const kmPerDegree = 6371.0088 * 3.141592653589793 / 180
	return testutil.Order(t, testutil.Coordinates(t, depot.Latitude()+km/kmPerDegree, depot.Longitude()), testutil.T0)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}
func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) DeliveryStarted() { m.Called() }
func (m *MockMetrics) DeliveryClosed(endType string, forced bool) {
	m.Called(endType, forced)
}
func (m *MockMetrics) ClockAdvanced()   { m.Called() }
func (m *MockMetrics) ReconcileFailed() { m.Called() }
