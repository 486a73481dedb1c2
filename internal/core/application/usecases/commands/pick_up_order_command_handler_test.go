package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickUpOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	recorder := new(MockMetrics)
	recorder.On("DeliveryStarted").Return().Once()

	// Given an active car courier and an order 5 km from the depot
	c := e.addCourier(t, testutil.Courier(t, 1))
	o := e.addOrder(t, orderAtKm(t, 5))
	cmd, err := commands.NewPickUpOrderCommand(c.ID(), o.ID())
	require.NoError(t, err)

	// When
	id, err := e.pickUpHandler(recorder).Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	d, err := e.uowFactory.Create().DeliveryRepository().Get(ctx, id)
	require.NoError(t, err)
	km, ok := d.ActualDistance()
	require.True(t, ok)
	assert.InDelta(t, 5.0, km, 0.01)
	assert.Equal(t, e.clock.Now(), d.StartedAt())
	assert.Equal(t, courier.Car, d.DeliveryType())
	assert.Equal(t, order.InProgress, e.status(t, o.ID()))
	assert.Equal(t, []string{engine.EventDeliveryStarted}, e.publisher.Types())
	recorder.AssertExpectations(t)
}

func TestPickUpOrderCommandHandler_Handle_BusyCourier(t *testing.T) {
	e := newEnv(t)
	c := e.addCourier(t, testutil.Courier(t, 1))
	first := e.addOrder(t, orderAtKm(t, 5))
	second := e.addOrder(t, orderAtKm(t, 2))

	_, err := e.pickUp(t, c.ID(), first.ID())
	require.NoError(t, err)

	_, err = e.pickUp(t, c.ID(), second.ID())

	assert.ErrorIs(t, err, delivery.ErrCourierAlreadyHasDelivery)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	assert.Empty(t, e.deliveries(t, second.ID()))
}

func TestPickUpOrderCommandHandler_Handle_Rejections(t *testing.T) {
	e := newEnv(t)
	e.addCourier(t, testutil.Courier(t, 1))
	e.addCourier(t, testutil.Courier(t, 2, testutil.Inactive()))
	e.addCourier(t, testutil.Courier(t, 3, testutil.WithMaxDistance(3)))
	e.addCourier(t, testutil.Courier(t, 4))
	taken := e.addOrder(t, orderAtKm(t, 1))
	far := e.addOrder(t, orderAtKm(t, 5))
	_, err := e.pickUp(t, 4, taken.ID())
	require.NoError(t, err)

	tests := []struct {
		name      string
		courierID int64
		orderID   kernel.UUID
		want      error
		kind      errs.Kind
	}{
		{"unknown courier", 99, far.ID(), errs.ErrObjectNotFound, errs.KindNotFound},
		{"inactive courier", 2, far.ID(), courier.ErrCourierIsInactive, errs.KindInvalidInput},
		{"busy courier is checked before the order", 4, kernel.NewUUID(), delivery.ErrCourierAlreadyHasDelivery, errs.KindConflict},
		{"unknown order", 1, kernel.NewUUID(), errs.ErrObjectNotFound, errs.KindNotFound},
		{"order in progress", 1, taken.ID(), delivery.ErrOrderAlreadyAssigned, errs.KindConflict},
		{"beyond personal reach", 3, far.ID(), courier.ErrDistanceExceedsLimit, errs.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.pickUp(t, tt.courierID, tt.orderID)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.kind, errs.KindOf(err))
		})
	}
	assert.Empty(t, e.deliveries(t, far.ID()))
}

func TestPickUpOrderCommandHandler_Handle_ClosedOrder(t *testing.T) {
	e := newEnv(t)
	e.addCourier(t, testutil.Courier(t, 1))
	e.addCourier(t, testutil.Courier(t, 2))
	o := e.addOrder(t, orderAtKm(t, 2))
	_, err := e.pickUp(t, 1, o.ID())
	require.NoError(t, err)
	require.NoError(t, e.deliver(t, 1, delivery.Delivered))

	_, err = e.pickUp(t, 2, o.ID())

	assert.ErrorIs(t, err, delivery.ErrDeliveryAlreadyClosed)
}

func TestPickUpOrderCommandHandler_Handle_RouteFailureCreatesNothing(t *testing.T) {
	e := newEnv(t)
	e.distances.RouteErr = errors.New("routing service unavailable")
	c := e.addCourier(t, testutil.Courier(t, 1))
	o := e.addOrder(t, orderAtKm(t, 2))

	_, err := e.pickUp(t, c.ID(), o.ID())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "routing service unavailable")
	assert.Empty(t, e.deliveries(t, o.ID()))
	assert.Empty(t, e.publisher.Events())
}

func TestPickUpOrderCommandHandler_Handle_UnroutableOrderIsInvalidInput(t *testing.T) {
	e := newEnv(t)
	e.distances.RouteErr = errs.NewValueIsInvalidErrorWithCause("route", errors.New("could not find routable point"))
	c := e.addCourier(t, testutil.Courier(t, 1))
	o := e.addOrder(t, orderAtKm(t, 2))

	_, err := e.pickUp(t, c.ID(), o.ID())

	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	assert.Empty(t, e.deliveries(t, o.ID()))
}

func TestPickUpOrderCommandHandler_Handle_GeneralMaxAppliesWithoutPersonalLimit(t *testing.T) {
	// Given an order accepted while the general limit allowed it
	e := newEnv(t)
	plain := e.addCourier(t, testutil.Courier(t, 1))
	farReaching := e.addCourier(t, testutil.Courier(t, 2, testutil.WithMaxDistance(6)))
	o := e.addOrder(t, orderAtKm(t, 5))

	// When the company tightens the limit afterwards
	cfg := e.config.Get()
	limit := 2.0
	cfg.MaxGeneralDeliveryDistanceKm = &limit
	require.NoError(t, e.config.Set(t.Context(), cfg))

	// Then a courier without a personal limit is turned away
	_, err := e.pickUp(t, plain.ID(), o.ID())
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	assert.Equal(t, order.Open, e.status(t, o.ID()))

	// And a courier whose personal limit covers the order takes it
	_, err = e.pickUp(t, farReaching.ID(), o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, e.status(t, o.ID()))
}

func TestPickUpOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	e := newEnv(t)

	_, err := e.pickUpHandler(nil).Handle(t.Context(), commands.PickUpOrderCommand{})

	assert.ErrorIs(t, err, commands.ErrPickUpOrderCommandIsNotConstructed)
}

func TestPickUpOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	cmd, err := commands.NewPickUpOrderCommand(1, kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewPickUpOrderCommandHandler(
		factory, e.config, e.section, e.estimator, e.notifier, new(MockMetrics), testutil.Logger())
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewPickUpOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewPickUpOrderCommand(0, kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
