package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedArrival(t *testing.T) {
	cfg := testConfig()

	t.Run("speed per delivery type", func(t *testing.T) {
		tests := []struct {
			deliveryType courier.DeliveryType
			distanceKm   float64
			want         time.Duration
		}{
			{courier.Car, 5, 7*time.Minute + 30*time.Second},
			{courier.Motorcycle, 7, 12 * time.Minute},
			{courier.Bicycle, 3, 12 * time.Minute},
			{courier.OnFoot, 2.5, 30 * time.Minute},
		}
		for _, tt := range tests {
			t.Run(tt.deliveryType.String(), func(t *testing.T) {
				got, err := services.ExpectedArrival(tt.deliveryType, tt.distanceKm, t0, cfg)

				require.NoError(t, err)
				assert.WithinDuration(t, t0.Add(tt.want), got, time.Millisecond)
			})
		}
	})

	t.Run("zero distance arrives at base", func(t *testing.T) {
		got, err := services.ExpectedArrival(courier.Car, 0, t0, cfg)

		require.NoError(t, err)
		assert.Equal(t, t0, got)
	})

	t.Run("unknown delivery type is a missing property", func(t *testing.T) {
		_, err := services.ExpectedArrival(courier.DeliveryType(77), 5, t0, cfg)

		assert.Equal(t, errs.KindMissingProperty, errs.KindOf(err))
	})

	t.Run("negative distance is invalid", func(t *testing.T) {
		_, err := services.ExpectedArrival(courier.Car, -1, t0, cfg)

		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	})
}
