// Package testutil provides fixtures and in-process fakes shared by the
// package tests.
package testutil

import (
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/settings"

	"github.com/stretchr/testify/require"
)

// T0 is the virtual time every fixture starts from.
var T0 = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Config is the default configuration with the clock at T0.
func Config() settings.Config {
	return settings.Defaults(T0)
}

// Depot is the default company location.
func Depot() kernel.Coordinates {
	return Config().CompanyLocation
}

func Coordinates(t *testing.T, lat, lon float64) kernel.Coordinates {
	t.Helper()
	c, err := kernel.NewCoordinates(lat, lon)
	require.NoError(t, err)
	return c
}

// CourierOption tweaks a fixture courier.
type CourierOption func(*courierSpec)

type courierSpec struct {
	deliveryType courier.DeliveryType
	active       bool
	maxKm        *float64
}

func Inactive() CourierOption {
	return func(s *courierSpec) { s.active = false }
}

func WithDeliveryType(t courier.DeliveryType) CourierOption {
	return func(s *courierSpec) { s.deliveryType = t }
}

func WithMaxDistance(km float64) CourierOption {
	return func(s *courierSpec) { s.maxKm = &km }
}

// Courier builds an active car courier unless options say otherwise.
func Courier(t *testing.T, id int64, opts ...CourierOption) *courier.Courier {
	t.Helper()
	spec := courierSpec{deliveryType: courier.Car, active: true}
	for _, opt := range opts {
		opt(&spec)
	}

	contact, err := courier.NewContact("Courier", "555-0100", "courier@example.com")
	require.NoError(t, err)
	c, err := courier.NewCourier(id, contact, spec.deliveryType, T0.AddDate(-1, 0, 0), spec.maxKm, spec.active)
	require.NoError(t, err)
	return c
}

// Order builds a regular order at location, opened at openedAt.
func Order(t *testing.T, location kernel.Coordinates, openedAt time.Time) *order.Order {
	t.Helper()
	parcel, err := order.NewParcel(2.5, 10, order.Dimensions{LengthCm: 30, WidthCm: 20, HeightCm: 15}, false)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Dana", "555-0199")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Regular, "Torstrasse 1, Berlin", location, parcel, customer, openedAt)
	require.NoError(t, err)
	return o
}

// NearbyOrder is an order roughly 3.4 km north of the depot.
func NearbyOrder(t *testing.T, openedAt time.Time) *order.Order {
	t.Helper()
	return Order(t, Coordinates(t, 52.552, 13.413215), openedAt)
}

// ActiveDelivery starts a delivery of o by c with a recorded distance.
func ActiveDelivery(t *testing.T, c *courier.Courier, o *order.Order, startedAt time.Time, km float64) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), c.ID(), c.DeliveryType(), startedAt, &km)
	require.NoError(t, err)
	return d
}
