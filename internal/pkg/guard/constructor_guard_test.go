package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard returns nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero guard returns supplied error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("delivery must be created via NewDelivery")

		// When
		err := g.Validate(expected)

		// Then
		assert.Equal(t, expected, err)
	})

	t.Run("zero guard falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("copies keep constructed state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		c := g

		require.NoError(t, c.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type parcel struct {
		weight float64
		guard  guard.ConstructorGuard
	}
	errNotConstructed := errors.New("parcel must be created via newParcel")
	newParcel := func(w float64) parcel {
		return parcel{weight: w, guard: guard.NewConstructorGuard()}
	}

	require.NoError(t, newParcel(1.5).guard.Validate(errNotConstructed))

	var zero parcel
	assert.Equal(t, errNotConstructed, zero.guard.Validate(errNotConstructed))
}
