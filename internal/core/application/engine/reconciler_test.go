package engine_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, h *harness, o *order.Order, d *delivery.Delivery) {
	t.Helper()
	ctx := t.Context()
	uow := h.uowFactory.Create()
	require.NoError(t, uow.Begin(ctx))
	if o != nil {
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
	}
	require.NoError(t, uow.DeliveryRepository().Add(ctx, d))
	require.NoError(t, uow.Commit(ctx))
}

func stored(t *testing.T, h *harness, id kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := h.uowFactory.Create().DeliveryRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return d
}

func TestAdvance_ClosesOverdueDelivery(t *testing.T) {
	ctx := t.Context()
	h := newHarness(t, nil)

	// Given a 5 km car delivery started at T0: arrival T0+7m30s, overdue from T0+12m30s
	c := testutil.Courier(t, 1)
	o := testutil.NearbyOrder(t, testutil.T0)
	d := testutil.ActiveDelivery(t, c, o, testutil.T0, 5)
	seed(t, h, o, d)

	// When
	now, err := h.clock.Advance(ctx, 13*time.Minute)
	require.NoError(t, err)

	// Then
	got := stored(t, h, d.ID())
	endedAt, closed := got.EndedAt()
	require.True(t, closed)
	assert.Equal(t, now, endedAt)
	endType, _ := got.EndType()
	assert.Contains(t, delivery.EndTypes(), endType)
	assert.Equal(t, []string{engine.EventDeliveryClosed, engine.EventClockAdvanced}, h.publisher.Types())
	payload, ok := h.publisher.Events()[0].Payload.(engine.DeliveryPayload)
	require.True(t, ok)
	assert.True(t, payload.Forced)
}

func TestAdvance_KeepsDeliveryBeforeGracePeriod(t *testing.T) {
	ctx := t.Context()
	h := newHarness(t, nil)
	c := testutil.Courier(t, 1)
	o := testutil.NearbyOrder(t, testutil.T0)
	d := testutil.ActiveDelivery(t, c, o, testutil.T0, 5)
	seed(t, h, o, d)

	_, err := h.clock.Advance(ctx, 12*time.Minute)
	require.NoError(t, err)

	assert.True(t, stored(t, h, d.ID()).IsActive())
}

func TestSweep_IsIdempotent(t *testing.T) {
	ctx := t.Context()
	h := newHarness(t, nil)
	c := testutil.Courier(t, 1)
	o := testutil.NearbyOrder(t, testutil.T0)
	d := testutil.ActiveDelivery(t, c, o, testutil.T0, 5)
	seed(t, h, o, d)

	_, err := h.clock.Advance(ctx, time.Hour)
	require.NoError(t, err)
	first := stored(t, h, d.ID())

	result := h.reconciler.Sweep(ctx, testutil.T0, testutil.T0.Add(2*time.Hour))

	assert.Equal(t, engine.SweepResult{}, result)
	again := stored(t, h, d.ID())
	firstEnd, _ := first.EndedAt()
	againEnd, _ := again.EndedAt()
	assert.Equal(t, firstEnd, againEnd)
}

func TestSweep_FailureDoesNotStopTheSweep(t *testing.T) {
	ctx := t.Context()
	recorder := new(MockMetrics)
	recorder.On("ReconcileFailed").Return().Once()
	recorder.On("DeliveryClosed", mock.AnythingOfType("string"), true).Return().Once()
	h := newHarness(t, recorder)

	// Given one delivery whose order is missing and one healthy delivery
	c1, c2 := testutil.Courier(t, 1), testutil.Courier(t, 2)
	orphan := testutil.ActiveDelivery(t, c1, testutil.NearbyOrder(t, testutil.T0), testutil.T0, 5)
	seed(t, h, nil, orphan)
	o := testutil.NearbyOrder(t, testutil.T0)
	healthy := testutil.ActiveDelivery(t, c2, o, testutil.T0.Add(time.Second), 5)
	seed(t, h, o, healthy)

	// When
	result := h.reconciler.Sweep(ctx, testutil.T0, testutil.T0.Add(time.Hour))

	// Then
	assert.Equal(t, engine.SweepResult{Checked: 2, Closed: 1, Failed: 1}, result)
	assert.True(t, stored(t, h, orphan.ID()).IsActive())
	assert.False(t, stored(t, h, healthy.ID()).IsActive())
	recorder.AssertExpectations(t)
}

func TestSweep_MeasuresRouteWhenDistanceIsUnknown(t *testing.T) {
	ctx := t.Context()
	h := newHarness(t, nil)
	c := testutil.Courier(t, 1, testutil.WithDeliveryType(courier.OnFoot))
	o := testutil.NearbyOrder(t, testutil.T0)
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), c.ID(), c.DeliveryType(), testutil.T0, nil)
	require.NoError(t, err)
	seed(t, h, o, d)

	// About 4.2 km on foot at 5 km/h is roughly 51 minutes.
	result := h.reconciler.Sweep(ctx, testutil.T0, testutil.T0.Add(30*time.Minute))
	assert.Equal(t, engine.SweepResult{Checked: 1}, result)
	assert.Equal(t, 1, h.distances.RouteCalls())

	result = h.reconciler.Sweep(ctx, testutil.T0, testutil.T0.Add(2*time.Hour))
	assert.Equal(t, engine.SweepResult{Checked: 1, Closed: 1}, result)
}

func TestSweep_UsesConfiguredRiskRange(t *testing.T) {
	ctx := t.Context()
	h := newHarness(t, nil)
	withConfig(t, h, func(cfg *settings.Config) { cfg.RiskRange = time.Hour })
	c := testutil.Courier(t, 1)
	o := testutil.NearbyOrder(t, testutil.T0)
	d := testutil.ActiveDelivery(t, c, o, testutil.T0, 5)
	seed(t, h, o, d)

	// Arrival at 7m30s plus half an hour of grace.
	result := h.reconciler.Sweep(ctx, testutil.T0, testutil.T0.Add(37*time.Minute))
	assert.Zero(t, result.Closed)

	result = h.reconciler.Sweep(ctx, testutil.T0, testutil.T0.Add(38*time.Minute))
	assert.Equal(t, 1, result.Closed)
}
