package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveOrderStatus(t *testing.T) {
	t.Run("no deliveries is open", func(t *testing.T) {
		assert.Equal(t, order.Open, services.DeriveOrderStatus(nil))
	})

	t.Run("active delivery wins over history", func(t *testing.T) {
		history := []*delivery.Delivery{
			closed(t, delivery.Failed, t0, t0.Add(time.Hour)),
			active(t, 2, t0.Add(2*time.Hour)),
		}

		assert.Equal(t, order.InProgress, services.DeriveOrderStatus(history))
	})

	t.Run("latest outcome decides", func(t *testing.T) {
		tests := []struct {
			endType delivery.EndType
			want    order.Status
		}{
			{delivery.Delivered, order.Delivered},
			{delivery.CustomerRefused, order.Refused},
			{delivery.Cancelled, order.Cancelled},
			{delivery.Failed, order.Open},
			{delivery.RecipientNotFound, order.Open},
		}
		for _, tt := range tests {
			t.Run(tt.endType.String(), func(t *testing.T) {
				history := []*delivery.Delivery{
					closed(t, tt.endType, t0.Add(time.Hour), t0.Add(2*time.Hour)),
					closed(t, delivery.RecipientNotFound, t0, t0.Add(30*time.Minute)),
				}

				assert.Equal(t, tt.want, services.DeriveOrderStatus(history))
			})
		}
	})

	t.Run("equal end times prefer the later start", func(t *testing.T) {
		end := t0.Add(time.Hour)
		history := []*delivery.Delivery{
			closed(t, delivery.Delivered, t0.Add(10*time.Minute), end),
			closed(t, delivery.Failed, t0, end),
		}

		assert.Equal(t, order.Delivered, services.DeriveOrderStatus(history))
	})

	t.Run("administrative cancellation", func(t *testing.T) {
		cancel, err := delivery.NewAdministrativeCancellation(kernel.NewUUID(), kernel.NewUUID(), t0)
		require.NoError(t, err)

		assert.Equal(t, order.Cancelled, services.DeriveOrderStatus([]*delivery.Delivery{cancel}))
	})

	t.Run("derivation is repeatable", func(t *testing.T) {
		history := []*delivery.Delivery{
			closed(t, delivery.CustomerRefused, t0, t0.Add(time.Hour)),
		}

		first := services.DeriveOrderStatus(history)
		second := services.DeriveOrderStatus(history)

		assert.Equal(t, first, second)
	})
}

func TestActiveDeliveryAt(t *testing.T) {
	started := active(t, 1, t0.Add(time.Hour))

	assert.Nil(t, services.ActiveDeliveryAt([]*delivery.Delivery{started}, t0))
	assert.Same(t, started, services.ActiveDeliveryAt([]*delivery.Delivery{started}, t0.Add(time.Hour)))
}

func TestLatestDelivery(t *testing.T) {
	assert.Nil(t, services.LatestDelivery(nil))

	first := closed(t, delivery.Failed, t0, t0.Add(time.Minute))
	second := closed(t, delivery.Failed, t0.Add(2*time.Minute), t0.Add(3*time.Minute))

	assert.Same(t, second, services.LatestDelivery([]*delivery.Delivery{second, first}))
}
