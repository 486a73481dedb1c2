// Package queries contains read operations for retrieving system state.
// Queries read through an unstarted unit of work and evaluate every derived
// value against a single configuration snapshot taken at the start of the call.
package queries

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/settings"
)

// SettingsReader hands out configuration snapshots, engine.ConfigStore in production.
type SettingsReader interface {
	Get() settings.Config
}

// CourierView is the read model of a courier.
type CourierView struct {
	ID                    int64
	Name                  string
	Phone                 string
	Email                 string
	Active                bool
	DeliveryType          courier.DeliveryType
	EmploymentStart       time.Time
	PersonalMaxDistanceKm *float64
}

func newCourierView(c *courier.Courier) CourierView {
	view := CourierView{
		ID:              c.ID(),
		Name:            c.Name(),
		Phone:           c.Contact().Phone(),
		Email:           c.Contact().Email(),
		Active:          c.IsActive(),
		DeliveryType:    c.DeliveryType(),
		EmploymentStart: c.EmploymentStart(),
	}
	if km, ok := c.PersonalMaxDistance(); ok {
		view.PersonalMaxDistanceKm = &km
	}
	return view
}

// DeliveryView is the read model of a delivery. Optional facts are nil until known.
type DeliveryView struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	CourierID        int64
	Administrative   bool
	DeliveryType     courier.DeliveryType
	StartedAt        time.Time
	ActualDistanceKm *float64
	EndType          *delivery.EndType
	EndedAt          *time.Time
}

func newDeliveryView(d *delivery.Delivery) DeliveryView {
	view := DeliveryView{
		ID:             d.ID(),
		OrderID:        d.OrderID(),
		CourierID:      d.CourierID(),
		Administrative: d.IsAdministrative(),
		DeliveryType:   d.DeliveryType(),
		StartedAt:      d.StartedAt(),
	}
	if km, ok := d.ActualDistance(); ok {
		view.ActualDistanceKm = &km
	}
	if endType, closed := d.EndType(); closed {
		endedAt, _ := d.EndedAt()
		view.EndType = &endType
		view.EndedAt = &endedAt
	}
	return view
}

// OrderView is the read model of an order together with its derived state.
type OrderView struct {
	ID             kernel.UUID
	Type           order.Type
	Address        string
	Location       kernel.Coordinates
	WeightKg       float64
	VolumeLiters   float64
	Dimensions     order.Dimensions
	Fragile        bool
	CustomerName   string
	CustomerPhone  string
	OpenedAt       time.Time
	Deadline       time.Time
	Status         order.Status
	ScheduleStatus order.ScheduleStatus
}

func newOrderView(o *order.Order, cfg settings.Config, status order.Status, schedule order.ScheduleStatus) OrderView {
	parcel := o.Parcel()
	return OrderView{
		ID:             o.ID(),
		Type:           o.Type(),
		Address:        o.Address(),
		Location:       o.Location(),
		WeightKg:       parcel.WeightKg(),
		VolumeLiters:   parcel.VolumeLiters(),
		Dimensions:     parcel.Dimensions(),
		Fragile:        parcel.IsFragile(),
		CustomerName:   o.Customer().Name(),
		CustomerPhone:  o.Customer().Phone(),
		OpenedAt:       o.OpenedAt(),
		Deadline:       o.Deadline(cfg.MaxDeliveryTimeSpan),
		Status:         status,
		ScheduleStatus: schedule,
	}
}

// groupByOrder indexes deliveries by order id.
func groupByOrder(deliveries []*delivery.Delivery) map[kernel.UUID][]*delivery.Delivery {
	out := make(map[kernel.UUID][]*delivery.Delivery)
	for _, d := range deliveries {
		out[d.OrderID()] = append(out[d.OrderID()], d)
	}
	return out
}
