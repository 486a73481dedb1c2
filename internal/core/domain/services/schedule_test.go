package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCalculator_BeforePickup(t *testing.T) {
	calc := services.NewScheduleCalculator()
	cfg := testConfig()

	tests := []struct {
		name    string
		elapsed time.Duration
		want    order.ScheduleStatus
	}{
		{"on time after 1h49m", time.Hour + 49*time.Minute, order.OnTime},
		{"at risk from 1h50m", time.Hour + 50*time.Minute, order.AtRisk},
		{"still at risk just before deadline", 2*time.Hour - time.Second, order.AtRisk},
		{"late at the deadline", 2 * time.Hour, order.Late},
		{"late after 2h01m", 2*time.Hour + time.Minute, order.Late},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Status(services.ScheduleInput{
				OpenedAt: t0,
				Config:   cfg,
				Now:      t0.Add(tt.elapsed),
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduleCalculator_InFlight(t *testing.T) {
	calc := services.NewScheduleCalculator()
	cfg := testConfig()
	d := active(t, 1, t0.Add(30*time.Minute))

	status := func(arrival, now time.Time) order.ScheduleStatus {
		got, err := calc.Status(services.ScheduleInput{
			OpenedAt: t0, Config: cfg, Delivery: d, ExpectedArrival: arrival, Now: now,
		})
		require.NoError(t, err)
		return got
	}

	t.Run("risk window is measured from the expected arrival", func(t *testing.T) {
		arrival := t0.Add(time.Hour)

		assert.Equal(t, order.OnTime, status(arrival, arrival.Add(-11*time.Minute)))
		assert.Equal(t, order.AtRisk, status(arrival, arrival.Add(-10*time.Minute)))
	})

	t.Run("passing the arrival before the deadline is at risk, never late", func(t *testing.T) {
		arrival := t0.Add(time.Hour)

		assert.Equal(t, order.AtRisk, status(arrival, t0.Add(90*time.Minute)))
	})

	t.Run("deadline is authoritative for late", func(t *testing.T) {
		arrival := t0.Add(time.Hour)

		assert.Equal(t, order.Late, status(arrival, t0.Add(2*time.Hour)))
	})

	t.Run("arrival after the deadline uses the deadline for risk", func(t *testing.T) {
		arrival := t0.Add(3 * time.Hour)

		assert.Equal(t, order.OnTime, status(arrival, t0.Add(time.Hour)))
		assert.Equal(t, order.AtRisk, status(arrival, t0.Add(time.Hour+50*time.Minute)))
	})

	t.Run("missing arrival is reported", func(t *testing.T) {
		_, err := calc.Status(services.ScheduleInput{OpenedAt: t0, Config: cfg, Delivery: d, Now: t0})

		assert.Equal(t, errs.KindMissingProperty, errs.KindOf(err))
	})
}

func TestScheduleCalculator_ClosedOrders(t *testing.T) {
	calc := services.NewScheduleCalculator()
	cfg := testConfig()

	t.Run("status is frozen at the closing time", func(t *testing.T) {
		d := closed(t, delivery.Delivered, t0.Add(10*time.Minute), t0.Add(40*time.Minute))

		got, err := calc.Status(services.ScheduleInput{
			OpenedAt:        t0,
			Config:          cfg,
			Delivery:        d,
			ExpectedArrival: t0.Add(45 * time.Minute),
			Now:             t0.Add(10 * time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, order.AtRisk, got)
	})

	t.Run("administrative cancellation uses the pre-pickup rule", func(t *testing.T) {
		d, err := delivery.NewAdministrativeCancellation(kernel.NewUUID(), kernel.NewUUID(), t0.Add(time.Hour))
		require.NoError(t, err)
		require.False(t, calc.NeedsArrival(d))

		got, err := calc.Status(services.ScheduleInput{
			OpenedAt: t0, Config: cfg, Delivery: d, Now: t0.Add(5 * time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, order.OnTime, got)
	})

	t.Run("reopened order follows the clock again", func(t *testing.T) {
		d := closed(t, delivery.RecipientNotFound, t0.Add(10*time.Minute), t0.Add(40*time.Minute))
		require.False(t, calc.NeedsArrival(d))

		got, err := calc.Status(services.ScheduleInput{
			OpenedAt: t0, Config: cfg, Delivery: d, Now: t0.Add(3 * time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, order.Late, got)
	})
}

func TestScheduleCalculator_NeedsArrival(t *testing.T) {
	calc := services.NewScheduleCalculator()

	assert.False(t, calc.NeedsArrival(nil))
	assert.True(t, calc.NeedsArrival(active(t, 1, t0)))
	assert.True(t, calc.NeedsArrival(closed(t, delivery.CustomerRefused, t0, t0.Add(time.Minute))))
	assert.False(t, calc.NeedsArrival(closed(t, delivery.Failed, t0, t0.Add(time.Minute))))
}
