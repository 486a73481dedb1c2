package courier_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hiredAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func createValidContact(t *testing.T) courier.Contact {
	t.Helper()
	contact, err := courier.NewContact("Alice", "+49 30 1234567", "alice@example.com")
	require.NoError(t, err)
	return contact
}

func ptr(v float64) *float64 { return &v }

func TestNewContact(t *testing.T) {
	t.Run("trims and keeps fields", func(t *testing.T) {
		c, err := courier.NewContact("  Bob ", " 555 ", "")

		require.NoError(t, err)
		assert.Equal(t, "Bob", c.Name())
		assert.Equal(t, "555", c.Phone())
		assert.Empty(t, c.Email())
	})

	t.Run("aggregates all violations", func(t *testing.T) {
		_, err := courier.NewContact(" ", "", "not-an-email")

		require.Error(t, err)
		assert.ErrorIs(t, err, courier.ErrNameIsRequired)
		assert.ErrorIs(t, err, courier.ErrPhoneIsRequired)
		assert.ErrorIs(t, err, courier.ErrEmailIsInvalid)
	})
}

func TestNewCourier(t *testing.T) {
	contact := createValidContact(t)

	t.Run("valid courier", func(t *testing.T) {
		c, err := courier.NewCourier(7, contact, courier.Car, hiredAt, ptr(12.5), true)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, int64(7), c.ID())
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, courier.Car, c.DeliveryType())
		assert.Equal(t, hiredAt, c.EmploymentStart())
		assert.True(t, c.IsActive())
		limit, ok := c.PersonalMaxDistance()
		assert.True(t, ok)
		assert.InDelta(t, 12.5, limit, 1e-9)
	})

	t.Run("personal limit is copied", func(t *testing.T) {
		limit := 10.0
		c, err := courier.NewCourier(1, contact, courier.OnFoot, hiredAt, &limit, true)
		require.NoError(t, err)

		limit = 1

		got, _ := c.PersonalMaxDistance()
		assert.InDelta(t, 10.0, got, 1e-9)
	})

	t.Run("invalid attributes are joined", func(t *testing.T) {
		c, err := courier.NewCourier(0, courier.Contact{}, courier.UnknownDeliveryType, time.Time{}, ptr(-1), true)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, courier.ErrIDIsInvalid)
		assert.ErrorIs(t, err, courier.ErrNameIsRequired)
		assert.ErrorIs(t, err, courier.ErrEmploymentStartIsRequired)
		assert.ErrorIs(t, err, courier.ErrPersonalMaxDistanceIsInvalid)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var c courier.Courier

		assert.Equal(t, courier.ErrCourierIsNotConstructed, c.Validate())
	})
}

func TestCourier_EnsureActive(t *testing.T) {
	contact := createValidContact(t)

	active, _ := courier.NewCourier(1, contact, courier.Car, hiredAt, nil, true)
	inactive, _ := courier.NewCourier(2, contact, courier.Car, hiredAt, nil, false)

	require.NoError(t, active.EnsureActive())
	err := inactive.EnsureActive()
	assert.Equal(t, courier.ErrCourierIsInactive, err)
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
}

func TestCourier_Reach(t *testing.T) {
	contact := createValidContact(t)

	t.Run("no personal limit reaches everything", func(t *testing.T) {
		c, _ := courier.NewCourier(1, contact, courier.Car, hiredAt, nil, true)

		assert.True(t, c.CanReach(10_000))
		require.NoError(t, c.EnsureCanReach(10_000))
	})

	t.Run("limit is inclusive", func(t *testing.T) {
		c, _ := courier.NewCourier(1, contact, courier.Bicycle, hiredAt, ptr(5), true)

		assert.True(t, c.CanReach(5))
		assert.False(t, c.CanReach(5.01))
	})

	t.Run("exceeding the limit is invalid input", func(t *testing.T) {
		c, _ := courier.NewCourier(3, contact, courier.Bicycle, hiredAt, ptr(5), true)

		err := c.EnsureCanReach(7.25)

		require.Error(t, err)
		assert.ErrorIs(t, err, courier.ErrDistanceExceedsLimit)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
		assert.Contains(t, err.Error(), "courier 3, 7.25 km > 5.00 km")
	})
}

func TestDeliveryType(t *testing.T) {
	t.Run("profiles", func(t *testing.T) {
		tests := map[courier.DeliveryType]kernel.RouteProfile{
			courier.Car:        kernel.RouteProfileDriving,
			courier.Motorcycle: kernel.RouteProfileDriving,
			courier.Bicycle:    kernel.RouteProfileWalking,
			courier.OnFoot:     kernel.RouteProfileWalking,
		}
		for dt, want := range tests {
			got, err := dt.Profile()
			require.NoError(t, err)
			assert.Equal(t, want, got, dt.String())
		}
	})

	t.Run("unknown type has no profile", func(t *testing.T) {
		_, err := courier.DeliveryType(42).Profile()

		assert.Equal(t, errs.KindMissingProperty, errs.KindOf(err))
	})

	t.Run("parse is case insensitive", func(t *testing.T) {
		dt, err := courier.ParseDeliveryType("onfoot")
		require.NoError(t, err)
		assert.Equal(t, courier.OnFoot, dt)

		_, err = courier.ParseDeliveryType("Hovercraft")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("validate", func(t *testing.T) {
		for _, dt := range courier.DeliveryTypes() {
			require.NoError(t, dt.Validate())
		}
		assert.Error(t, courier.UnknownDeliveryType.Validate())
		assert.Equal(t, "Unknown", courier.DeliveryType(99).String())
	})
}
