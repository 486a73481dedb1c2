package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderDetails(t *testing.T, address string) commands.OrderDetails {
	t.Helper()
	parcel, err := order.NewParcel(1.2, 4, order.Dimensions{LengthCm: 20, WidthCm: 15, HeightCm: 10}, true)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Max Mustermann", "+49 30 7654321")
	require.NoError(t, err)
	return commands.OrderDetails{
		Type:     order.Express,
		Address:  address,
		Parcel:   parcel,
		Customer: customer,
	}
}

func createOrder(t *testing.T, e *env, address string) (kernel.UUID, error) {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(orderDetails(t, address))
	require.NoError(t, err)
	h := commands.NewCreateOrderCommandHandler(e.uowFactory, e.config, e.section, e.distances, testutil.Logger())
	return h.Handle(t.Context(), cmd)
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	torstrasse := testutil.Coordinates(t, 52.5293, 13.4015)
	e.distances.Addresses["Torstrasse 1, Berlin"] = torstrasse
	_, err := e.clock.Advance(ctx, time.Hour)
	require.NoError(t, err)

	id, err := createOrder(t, e, "  Torstrasse 1, Berlin ")

	require.NoError(t, err)
	stored, err := e.uowFactory.Create().OrderRepository().Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, stored.Location().IsEqual(torstrasse))
	assert.Equal(t, "Torstrasse 1, Berlin", stored.Address())
	assert.Equal(t, testutil.T0.Add(time.Hour), stored.OpenedAt())
	assert.Equal(t, order.Express, stored.Type())
}

func TestCreateOrderCommandHandler_Handle_OutsideDeliveryArea(t *testing.T) {
	e := newEnv(t)
	e.distances.Addresses["Marktplatz 1, Leipzig"] = testutil.Coordinates(t, 51.3406, 12.3747)

	_, err := createOrder(t, e, "Marktplatz 1, Leipzig")

	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
}

func TestCreateOrderCommandHandler_Handle_UnknownAddress(t *testing.T) {
	e := newEnv(t)

	_, err := createOrder(t, e, "Nowhere 0")

	assert.Equal(t, errs.KindInvalidAddress, errs.KindOf(err))
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	e.distances.Addresses["Torstrasse 1, Berlin"] = testutil.Coordinates(t, 52.5293, 13.4015)
	cmd, err := commands.NewCreateOrderCommand(orderDetails(t, "Torstrasse 1, Berlin"))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	factory := new(MockUnitOfWorkFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, e.config, e.section, e.distances, testutil.Logger())
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	e.addCourier(t, testutil.Courier(t, 1))
	o := e.addOrder(t, orderAtKm(t, 2))
	taken := e.addOrder(t, orderAtKm(t, 3))
	_, err := e.pickUp(t, 1, taken.ID())
	require.NoError(t, err)
	e.distances.Addresses["Kantstrasse 5, Berlin"] = testutil.Coordinates(t, 52.5058, 13.3226)
	h := commands.NewUpdateOrderCommandHandler(e.uowFactory, e.config, e.section, e.distances, testutil.Logger())

	// When the address of an open order changes
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), orderDetails(t, "Kantstrasse 5, Berlin"))
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	// Then it is geocoded again and the open time is kept
	stored, err := e.uowFactory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.InDelta(t, 52.5058, stored.Location().Latitude(), 1e-9)
	assert.Equal(t, o.OpenedAt(), stored.OpenedAt())

	// And an order in progress cannot be edited
	cmd, err = commands.NewUpdateOrderCommand(taken.ID(), orderDetails(t, taken.Address()))
	require.NoError(t, err)
	assert.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrOrderIsNotOpen)
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	e.addCourier(t, testutil.Courier(t, 1))
	fresh := e.addOrder(t, orderAtKm(t, 2))
	touched := e.addOrder(t, orderAtKm(t, 3))
	_, err := e.pickUp(t, 1, touched.ID())
	require.NoError(t, err)
	h := commands.NewDeleteOrderCommandHandler(e.uowFactory, e.section, testutil.Logger())

	cmd, err := commands.NewDeleteOrderCommand(fresh.ID())
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))
	_, err = e.uowFactory.Create().OrderRepository().Get(ctx, fresh.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	cmd, err = commands.NewDeleteOrderCommand(touched.ID())
	require.NoError(t, err)
	assert.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrOrderHasDeliveries)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) Delete(_ context.Context, _ kernel.UUID) error  { return nil }
func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) DeleteAll(_ context.Context) error { return nil }
