// Package orderrepo maps orders to the orders table. Parcel and customer are
// value objects and live in the order row.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Type          int         `gorm:"type:smallint;not null"`
	Address       string      `gorm:"type:varchar(512);not null"`
	Location      LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Parcel        ParcelDTO   `gorm:"embedded;embeddedPrefix:parcel_"`
	CustomerName  string      `gorm:"type:varchar(255);not null"`
	CustomerPhone string      `gorm:"type:varchar(64);not null"`
	OpenedAt      time.Time   `gorm:"not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO stores the geocoded delivery address.
type LocationDTO struct {
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

type ParcelDTO struct {
	WeightKg     float64 `gorm:"not null"`
	VolumeLiters float64 `gorm:"not null"`
	LengthCm     float64 `gorm:"not null"`
	WidthCm      float64 `gorm:"not null"`
	HeightCm     float64 `gorm:"not null"`
	Fragile      bool    `gorm:"not null"`
}

func fromDomain(o *order.Order) OrderDTO {
	parcel := o.Parcel()
	dimensions := parcel.Dimensions()

	return OrderDTO{
		ID:      o.ID().Google(),
		Type:    int(o.Type()),
		Address: o.Address(),
		Location: LocationDTO{
			Latitude:  o.Location().Latitude(),
			Longitude: o.Location().Longitude(),
		},
		Parcel: ParcelDTO{
			WeightKg:     parcel.WeightKg(),
			VolumeLiters: parcel.VolumeLiters(),
			LengthCm:     dimensions.LengthCm,
			WidthCm:      dimensions.WidthCm,
			HeightCm:     dimensions.HeightCm,
			Fragile:      parcel.IsFragile(),
		},
		CustomerName:  o.Customer().Name(),
		CustomerPhone: o.Customer().Phone(),
		OpenedAt:      o.OpenedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewCoordinates(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	parcel, err := order.NewParcel(
		dto.Parcel.WeightKg,
		dto.Parcel.VolumeLiters,
		order.Dimensions{
			LengthCm: dto.Parcel.LengthCm,
			WidthCm:  dto.Parcel.WidthCm,
			HeightCm: dto.Parcel.HeightCm,
		},
		dto.Parcel.Fragile,
	)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(id, order.Type(dto.Type), dto.Address, location, parcel, customer, dto.OpenedAt.UTC())
}
