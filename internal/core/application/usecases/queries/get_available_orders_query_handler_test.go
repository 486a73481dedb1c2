package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func available(t *testing.T, e *env, courierID int64) ([]queries.AvailableOrder, error) {
	t.Helper()
	query, err := queries.NewGetAvailableOrdersQuery(courierID)
	require.NoError(t, err)
	return queries.NewGetAvailableOrdersQueryHandler(e.uowFactory, e.config, e.evaluator).Handle(t.Context(), query)
}

func TestGetAvailableOrdersQueryHandler_Handle_FiltersByReachAndStatus(t *testing.T) {
	// Given
	e := newEnv(t)
	bike := e.addCourier(t, testutil.Courier(t, 1, testutil.WithMaxDistance(4)))
	other := e.addCourier(t, testutil.Courier(t, 2))

	near := e.addOrder(t, orderAtKm(t, 2, testutil.T0.Add(-time.Hour)))
	e.addOrder(t, orderAtKm(t, 6, testutil.T0.Add(-time.Hour)))
	taken := e.addOrder(t, orderAtKm(t, 3, testutil.T0.Add(-time.Hour)))
	e.addDelivery(t, testutil.ActiveDelivery(t, other, taken, testutil.T0.Add(-time.Minute), 3))

	// When
	orders, err := available(t, e, bike.ID())

	// Then
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, near.ID(), orders[0].ID)
	assert.InDelta(t, 2, orders[0].AerialDistanceKm, 0.01)
	assert.Equal(t, order.OnTime, orders[0].ScheduleStatus)
}

func TestGetAvailableOrdersQueryHandler_Handle_IgnoresGeneralMaxDistance(t *testing.T) {
	// Given
	e := newEnv(t)
	car := e.addCourier(t, testutil.Courier(t, 1))
	far := e.addOrder(t, orderAtKm(t, 45, testutil.T0))

	// When
	orders, err := available(t, e, car.ID())

	// Then
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, far.ID(), orders[0].ID)
}

func TestGetAvailableOrdersQueryHandler_Handle_ReopenedOrderIsAvailable(t *testing.T) {
	// Given
	e := newEnv(t)
	car := e.addCourier(t, testutil.Courier(t, 1))
	o := e.addOrder(t, testutil.NearbyOrder(t, testutil.T0.Add(-30*time.Minute)))
	d := testutil.ActiveDelivery(t, car, o, testutil.T0.Add(-20*time.Minute), 4)
	require.NoError(t, d.Close(delivery.RecipientNotFound, testutil.T0.Add(-5*time.Minute)))
	e.addDelivery(t, d)

	// When
	orders, err := available(t, e, car.ID())

	// Then
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o.ID(), orders[0].ID)
}

func TestGetAvailableOrdersQueryHandler_Handle_OldestFirstWithSchedule(t *testing.T) {
	// Given
	e := newEnv(t)
	car := e.addCourier(t, testutil.Courier(t, 1))
	fresh := e.addOrder(t, orderAtKm(t, 1, testutil.T0))
	late := e.addOrder(t, orderAtKm(t, 1, testutil.T0.Add(-3*time.Hour)))
	risky := e.addOrder(t, orderAtKm(t, 1, testutil.T0.Add(-115*time.Minute)))

	// When
	orders, err := available(t, e, car.ID())

	// Then
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, late.ID(), orders[0].ID)
	assert.Equal(t, order.Late, orders[0].ScheduleStatus)
	assert.Equal(t, risky.ID(), orders[1].ID)
	assert.Equal(t, order.AtRisk, orders[1].ScheduleStatus)
	assert.Equal(t, fresh.ID(), orders[2].ID)
	assert.Equal(t, order.OnTime, orders[2].ScheduleStatus)
}

func TestGetAvailableOrdersQueryHandler_Handle_UnknownCourier(t *testing.T) {
	e := newEnv(t)

	_, err := available(t, e, 99)

	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestNewGetAvailableOrdersQuery_Invalid(t *testing.T) {
	_, err := queries.NewGetAvailableOrdersQuery(0)
	require.Error(t, err)
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))

	e := newEnv(t)
	_, err = queries.NewGetAvailableOrdersQueryHandler(e.uowFactory, e.config, e.evaluator).
		Handle(t.Context(), queries.GetAvailableOrdersQuery{})
	assert.ErrorIs(t, err, queries.ErrGetAvailableOrdersQueryIsNotConstructed)
}
