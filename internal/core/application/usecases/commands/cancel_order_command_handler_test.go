package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/metrics"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cancel(t *testing.T, e *env, id kernel.UUID) error {
	t.Helper()
	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)
	h := commands.NewCancelOrderCommandHandler(
		e.uowFactory, e.config, e.section, e.notifier, metrics.Nop{}, testutil.Logger())
	return h.Handle(t.Context(), cmd)
}

func TestCancelOrderCommandHandler_Handle_OpenOrder(t *testing.T) {
	e := newEnv(t)
	o := e.addOrder(t, orderAtKm(t, 2))

	require.NoError(t, cancel(t, e, o.ID()))

	list := e.deliveries(t, o.ID())
	require.Len(t, list, 1)
	assert.True(t, list[0].IsAdministrative())
	endType, _ := list[0].EndType()
	assert.Equal(t, delivery.Cancelled, endType)
	assert.Equal(t, order.Cancelled, e.status(t, o.ID()))
}

func TestCancelOrderCommandHandler_Handle_OrderInProgress(t *testing.T) {
	e := newEnv(t)
	e.addCourier(t, testutil.Courier(t, 1))
	o := e.addOrder(t, orderAtKm(t, 2))
	id, err := e.pickUp(t, 1, o.ID())
	require.NoError(t, err)

	require.NoError(t, cancel(t, e, o.ID()))

	list := e.deliveries(t, o.ID())
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID())
	assert.False(t, list[0].IsActive())
	assert.Equal(t, order.Cancelled, e.status(t, o.ID()))

	// The courier is free again.
	assert.ErrorIs(t, e.deliver(t, 1, delivery.Delivered), delivery.ErrCourierHasNoActiveDelivery)
}

func TestCancelOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	e := newEnv(t)
	o := e.addOrder(t, orderAtKm(t, 2))
	require.NoError(t, cancel(t, e, o.ID()))

	err := cancel(t, e, o.ID())

	assert.ErrorIs(t, err, delivery.ErrDeliveryAlreadyClosed)
	assert.Len(t, e.deliveries(t, o.ID()), 1)
}

func TestCancelOrderCommandHandler_Handle_UnknownOrder(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, errs.KindNotFound, errs.KindOf(cancel(t, e, kernel.NewUUID())))
}
