// Package courierrepo maps couriers to the couriers table.
package courierrepo

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
)

// CourierDTO is the row shape of a courier. Ids are assigned by the
// application, so the primary key is not auto-incremented.
type CourierDTO struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement:false"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	Phone                 string    `gorm:"type:varchar(64);not null"`
	Email                 string    `gorm:"type:varchar(255)"`
	DeliveryType          int       `gorm:"type:smallint;not null"`
	Active                bool      `gorm:"not null"`
	EmploymentStart       time.Time `gorm:"not null"`
	PersonalMaxDistanceKm *float64
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:              c.ID(),
		Name:            c.Name(),
		Phone:           c.Contact().Phone(),
		Email:           c.Contact().Email(),
		DeliveryType:    int(c.DeliveryType()),
		Active:          c.IsActive(),
		EmploymentStart: c.EmploymentStart(),
	}
	if km, ok := c.PersonalMaxDistance(); ok {
		dto.PersonalMaxDistanceKm = &km
	}
	return dto
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	contact, err := courier.NewContact(dto.Name, dto.Phone, dto.Email)
	if err != nil {
		return nil, err
	}

	return courier.NewCourier(
		dto.ID,
		contact,
		courier.DeliveryType(dto.DeliveryType),
		dto.EmploymentStart.UTC(),
		dto.PersonalMaxDistanceKm,
		dto.Active,
	)
}
