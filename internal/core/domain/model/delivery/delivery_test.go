package delivery_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startedAt = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func newActive(t *testing.T) *delivery.Delivery {
	t.Helper()
	km := 5.0
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), 3, courier.Car, startedAt, &km)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("new delivery is active", func(t *testing.T) {
		d := newActive(t)

		require.NoError(t, d.Validate())
		assert.True(t, d.IsActive())
		assert.False(t, d.IsAdministrative())
		assert.Equal(t, int64(3), d.CourierID())
		assert.Equal(t, courier.Car, d.DeliveryType())
		km, ok := d.ActualDistance()
		assert.True(t, ok)
		assert.InDelta(t, 5.0, km, 1e-9)
		_, closed := d.EndType()
		assert.False(t, closed)
		_, ended := d.EndedAt()
		assert.False(t, ended)
	})

	t.Run("courier delivery needs a courier", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), 0, courier.Car, startedAt, nil)

		assert.ErrorIs(t, err, delivery.ErrCourierIDIsInvalid)
	})

	t.Run("invalid attributes are joined", func(t *testing.T) {
		negative := -1.0

		_, err := delivery.NewDelivery(kernel.UUID{}, kernel.UUID{}, 1, courier.UnknownDeliveryType, time.Time{}, &negative)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, delivery.ErrStartedAtIsRequired)
		assert.ErrorIs(t, err, delivery.ErrActualDistanceIsInvalid)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "delivery type")
	})
}

func TestDelivery_Close(t *testing.T) {
	t.Run("closes once", func(t *testing.T) {
		// Given
		d := newActive(t)
		at := startedAt.Add(20 * time.Minute)

		// When
		err := d.Close(delivery.RecipientNotFound, at)

		// Then
		require.NoError(t, err)
		assert.False(t, d.IsActive())
		endType, closed := d.EndType()
		assert.True(t, closed)
		assert.Equal(t, delivery.RecipientNotFound, endType)
		endedAt, _ := d.EndedAt()
		assert.Equal(t, at, endedAt)
	})

	t.Run("second close is a conflict and changes nothing", func(t *testing.T) {
		// Given
		d := newActive(t)
		require.NoError(t, d.Close(delivery.Delivered, startedAt.Add(time.Minute)))

		// When
		err := d.Close(delivery.Failed, startedAt.Add(time.Hour))

		// Then
		assert.ErrorIs(t, err, delivery.ErrDeliveryAlreadyClosed)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		endType, _ := d.EndType()
		assert.Equal(t, delivery.Delivered, endType)
		endedAt, _ := d.EndedAt()
		assert.Equal(t, startedAt.Add(time.Minute), endedAt)
	})

	t.Run("cannot end before start", func(t *testing.T) {
		d := newActive(t)

		err := d.Close(delivery.Delivered, startedAt.Add(-time.Second))

		assert.Equal(t, delivery.ErrEndedBeforeStart, err)
		assert.True(t, d.IsActive())
	})

	t.Run("unknown end type is rejected", func(t *testing.T) {
		d := newActive(t)

		err := d.Close(delivery.UnknownEndType, startedAt)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, d.IsActive())
	})

	t.Run("started by", func(t *testing.T) {
		d := newActive(t)

		assert.True(t, d.HasStartedBy(startedAt))
		assert.False(t, d.HasStartedBy(startedAt.Add(-time.Nanosecond)))
	})
}

func TestNewAdministrativeCancellation(t *testing.T) {
	d, err := delivery.NewAdministrativeCancellation(kernel.NewUUID(), kernel.NewUUID(), startedAt)

	require.NoError(t, err)
	assert.True(t, d.IsAdministrative())
	assert.False(t, d.IsActive())
	endType, _ := d.EndType()
	assert.Equal(t, delivery.Cancelled, endType)
	assert.ErrorIs(t, d.Close(delivery.Delivered, startedAt), delivery.ErrDeliveryAlreadyClosed)
}

func TestRestoreDelivery(t *testing.T) {
	endedAt := startedAt.Add(time.Hour)

	t.Run("closed delivery", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), 4, courier.OnFoot,
			startedAt, nil, delivery.Failed, &endedAt)

		require.NoError(t, err)
		assert.False(t, d.IsActive())
		_, hasDistance := d.ActualDistance()
		assert.False(t, hasDistance)
	})

	t.Run("administrative record", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), 0, courier.UnknownDeliveryType,
			startedAt, nil, delivery.Cancelled, &startedAt)

		require.NoError(t, err)
		assert.True(t, d.IsAdministrative())
	})

	t.Run("inconsistent end fields", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), 4, courier.Car,
			startedAt, nil, delivery.Delivered, nil)
		require.Error(t, err)

		before := startedAt.Add(-time.Minute)
		_, err = delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), 4, courier.Car,
			startedAt, nil, delivery.Delivered, &before)
		assert.ErrorIs(t, err, delivery.ErrEndedBeforeStart)
	})
}

func TestEndType(t *testing.T) {
	t.Run("order status mapping", func(t *testing.T) {
		assert.Equal(t, order.Delivered, delivery.Delivered.OrderStatus())
		assert.Equal(t, order.Refused, delivery.CustomerRefused.OrderStatus())
		assert.Equal(t, order.Cancelled, delivery.Cancelled.OrderStatus())
		assert.Equal(t, order.Open, delivery.Failed.OrderStatus())
		assert.Equal(t, order.Open, delivery.RecipientNotFound.OrderStatus())
		assert.Equal(t, order.UnknownStatus, delivery.UnknownEndType.OrderStatus())
	})

	t.Run("parse", func(t *testing.T) {
		et, err := delivery.ParseEndType("customerrefused")
		require.NoError(t, err)
		assert.Equal(t, delivery.CustomerRefused, et)

		_, err = delivery.ParseEndType("Lost")
		assert.Error(t, err)
	})

	t.Run("full set is valid", func(t *testing.T) {
		assert.Len(t, delivery.EndTypes(), 5)
		for _, et := range delivery.EndTypes() {
			require.NoError(t, et.Validate())
		}
	})
}
