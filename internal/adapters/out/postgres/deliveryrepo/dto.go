// Package deliveryrepo maps deliveries to the deliveries table.
//
// Administrative records carry courier id 0, so courier_id has no foreign key.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID        int64      `gorm:"not null;index"`
	DeliveryType     int        `gorm:"type:smallint;not null"`
	StartedAt        time.Time  `gorm:"not null;index"`
	ActualDistanceKm *float64
	EndType          int        `gorm:"type:smallint;not null"`
	EndedAt          *time.Time `gorm:"index"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:           d.ID().Google(),
		OrderID:      d.OrderID().Google(),
		CourierID:    d.CourierID(),
		DeliveryType: int(d.DeliveryType()),
		StartedAt:    d.StartedAt(),
	}
	if km, ok := d.ActualDistance(); ok {
		dto.ActualDistanceKm = &km
	}
	if endType, closed := d.EndType(); closed {
		endedAt, _ := d.EndedAt()
		dto.EndType = int(endType)
		dto.EndedAt = &endedAt
	}
	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}

	var endedAt *time.Time
	if dto.EndedAt != nil {
		at := dto.EndedAt.UTC()
		endedAt = &at
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		dto.CourierID,
		courier.DeliveryType(dto.DeliveryType),
		dto.StartedAt.UTC(),
		dto.ActualDistanceKm,
		delivery.EndType(dto.EndType),
		endedAt,
	)
}
