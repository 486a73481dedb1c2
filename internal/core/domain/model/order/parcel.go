package order

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a zero Parcel reaches an order.
var ErrParcelIsNotConstructed = errs.NewValueIsRequiredError("parcel must be created via NewParcel")

// Dimensions of a parcel in centimetres.
type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// Parcel describes the physical package of an order.
type Parcel struct {
	weightKg     float64
	volumeLiters float64
	dimensions   Dimensions
	fragile      bool
	guard        guard.ConstructorGuard
}

// NewParcel validates that every measure is strictly positive.
func NewParcel(weightKg, volumeLiters float64, dimensions Dimensions, fragile bool) (Parcel, error) {
	if err := errors.Join(
		positive("weight", weightKg),
		positive("volume", volumeLiters),
		positive("length", dimensions.LengthCm),
		positive("width", dimensions.WidthCm),
		positive("height", dimensions.HeightCm),
	); err != nil {
		return Parcel{}, err
	}

	return Parcel{
		weightKg:     weightKg,
		volumeLiters: volumeLiters,
		dimensions:   dimensions,
		fragile:      fragile,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p Parcel) WeightKg() float64      { return p.weightKg }
func (p Parcel) VolumeLiters() float64  { return p.volumeLiters }
func (p Parcel) Dimensions() Dimensions { return p.dimensions }
func (p Parcel) IsFragile() bool        { return p.fragile }

func positive(param string, v float64) error {
	if !(v > 0) {
		return errs.NewValueIsInvalidError(param)
	}
	return nil
}
