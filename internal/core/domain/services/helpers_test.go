package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/settings"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

func testConfig() settings.Config {
	cfg := settings.Defaults(t0)
	cfg.MaxDeliveryTimeSpan = 2 * time.Hour
	cfg.RiskRange = 10 * time.Minute
	return cfg
}

func newCourier(t *testing.T, id int64, active bool, maxKm *float64) *courier.Courier {
	t.Helper()
	contact, err := courier.NewContact("Courier", "555-0100", "")
	require.NoError(t, err)
	c, err := courier.NewCourier(id, contact, courier.Car, t0.AddDate(-1, 0, 0), maxKm, active)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	loc, err := kernel.NewCoordinates(52.55, 13.40)
	require.NoError(t, err)
	parcel, err := order.NewParcel(1, 1, order.Dimensions{LengthCm: 10, WidthCm: 10, HeightCm: 10}, false)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Dana", "555-0199")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Regular, "Somewhere 1", loc, parcel, customer, t0)
	require.NoError(t, err)
	return o
}

func active(t *testing.T, courierID int64, startedAt time.Time) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), courierID, courier.Car, startedAt, nil)
	require.NoError(t, err)
	return d
}

func closed(t *testing.T, endType delivery.EndType, startedAt, endedAt time.Time) *delivery.Delivery {
	t.Helper()
	d := active(t, 1, startedAt)
	require.NoError(t, d.Close(endType, endedAt))
	return d
}
