package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/require"
)

type env struct {
	uowFactory *memory.UnitOfWorkFactory
	config     *engine.ConfigStore
	evaluator  engine.ScheduleEvaluator
}

func newEnv(t *testing.T) *env {
	t.Helper()

	distances := testutil.NewDistances()
	config, err := engine.NewConfigStore(testutil.Config(), distances, testutil.Logger())
	require.NoError(t, err)

	return &env{
		uowFactory: memory.NewUnitOfWorkFactory(memory.NewStore()),
		config:     config,
		evaluator:  engine.NewScheduleEvaluator(engine.NewArrivalEstimator(distances)),
	}
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

func (e *env) addDelivery(t *testing.T, d *delivery.Delivery) *delivery.Delivery {
	t.Helper()
	require.NoError(t, e.uowFactory.Create().DeliveryRepository().Add(t.Context(), d))
	return d
}

// orderAtKm places an order due north of the depot at roughly km aerial distance.
func orderAtKm(t *testing.T, km float64, openedAt time.Time) *order.Order {
	t.Helper()
	depot := testutil.Depot()
	const kmPerDegree = 6371.0088 * 3.141592653589793 / 180
	return testutil.Order(t, testutil.Coordinates(t, depot.Latitude()+km/kmPerDegree, depot.Longitude()), openedAt)
}
