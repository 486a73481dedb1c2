package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"
)

func toSettings(cfg settings.Config) servers.Settings {
	return servers.Settings{
		AvgCarSpeedKmh:               cfg.AvgCarSpeedKmh,
		AvgMotorcycleSpeedKmh:        cfg.AvgMotorcycleSpeedKmh,
		AvgBicycleSpeedKmh:           cfg.AvgBicycleSpeedKmh,
		AvgOnFootSpeedKmh:            cfg.AvgOnFootSpeedKmh,
		MaxGeneralDeliveryDistanceKm: cfg.MaxGeneralDeliveryDistanceKm,
		MaxDeliveryTimeSpanMinutes:   cfg.MaxDeliveryTimeSpan.Minutes(),
		RiskRangeMinutes:             cfg.RiskRange.Minutes(),
		InactivityRangeMinutes:       cfg.InactivityRange.Minutes(),
		CompanyAddress:               cfg.CompanyAddress,
		CompanyLatitude:              cfg.CompanyLocation.Latitude(),
		CompanyLongitude:             cfg.CompanyLocation.Longitude(),
		Clock:                        cfg.Clock,
	}
}

// applySettingsUpdate overlays a partial update on cfg: omitted fields keep
// their current value. Sending an explicit null for the distance cap is
// indistinguishable from omitting it, so DisableMaxGeneralDeliveryDistance
// removes the cap.
func applySettingsUpdate(cfg settings.Config, r servers.SettingsUpdate) settings.Config {
	next := cfg.Clone()
	setFloat(&next.AvgCarSpeedKmh, r.AvgCarSpeedKmh)
	setFloat(&next.AvgMotorcycleSpeedKmh, r.AvgMotorcycleSpeedKmh)
	setFloat(&next.AvgBicycleSpeedKmh, r.AvgBicycleSpeedKmh)
	setFloat(&next.AvgOnFootSpeedKmh, r.AvgOnFootSpeedKmh)
	setMinutes(&next.MaxDeliveryTimeSpan, r.MaxDeliveryTimeSpanMinutes)
	setMinutes(&next.RiskRange, r.RiskRangeMinutes)
	setMinutes(&next.InactivityRange, r.InactivityRangeMinutes)

	switch {
	case r.DisableMaxGeneralDeliveryDistance != nil && *r.DisableMaxGeneralDeliveryDistance:
		next.MaxGeneralDeliveryDistanceKm = nil
	case r.MaxGeneralDeliveryDistanceKm != nil:
		km := *r.MaxGeneralDeliveryDistanceKm
		next.MaxGeneralDeliveryDistanceKm = &km
	}
	if r.CompanyAddress != nil {
		next.CompanyAddress = *r.CompanyAddress
	}
	return next
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setMinutes(dst *time.Duration, minutes *float64) {
	if minutes != nil {
		*dst = time.Duration(*minutes * float64(time.Minute))
	}
}

func toCourier(v queries.CourierView) servers.Courier {
	return servers.Courier{
		Id:                    v.ID,
		Name:                  v.Name,
		Phone:                 v.Phone,
		Email:                 v.Email,
		DeliveryType:          v.DeliveryType.String(),
		Active:                v.Active,
		EmploymentStart:       v.EmploymentStart,
		PersonalMaxDistanceKm: v.PersonalMaxDistanceKm,
	}
}

func toOrder(v queries.OrderView) servers.Order {
	fragile := v.Fragile
	return servers.Order{
		Id:        v.ID.Google(),
		Type:      v.Type.String(),
		Address:   v.Address,
		Latitude:  v.Location.Latitude(),
		Longitude: v.Location.Longitude(),
		Parcel: servers.Parcel{
			WeightKg:     v.WeightKg,
			VolumeLiters: v.VolumeLiters,
			LengthCm:     v.Dimensions.LengthCm,
			WidthCm:      v.Dimensions.WidthCm,
			HeightCm:     v.Dimensions.HeightCm,
			Fragile:      &fragile,
		},
		Customer:       servers.Customer{Name: v.CustomerName, Phone: v.CustomerPhone},
		OpenedAt:       v.OpenedAt,
		Deadline:       v.Deadline,
		Status:         v.Status.String(),
		ScheduleStatus: v.ScheduleStatus.String(),
	}
}

func toDelivery(v queries.DeliveryView) servers.Delivery {
	out := servers.Delivery{
		Id:               v.ID.Google(),
		OrderId:          v.OrderID.Google(),
		CourierId:        v.CourierID,
		Administrative:   v.Administrative,
		DeliveryType:     v.DeliveryType.String(),
		StartedAt:        v.StartedAt,
		ActualDistanceKm: v.ActualDistanceKm,
		EndedAt:          v.EndedAt,
	}
	if v.EndType != nil {
		endType := v.EndType.String()
		out.EndType = &endType
	}
	return out
}

func toOrderStatus(r queries.GetOrderStatusQueryResponse) servers.OrderStatus {
	out := servers.OrderStatus{
		OrderId:        r.OrderID.Google(),
		Status:         r.Status.String(),
		ScheduleStatus: r.ScheduleStatus.String(),
		Deadline:       r.Deadline,
	}
	if r.Delivery != nil {
		d := toDelivery(*r.Delivery)
		out.Delivery = &d
	}
	return out
}

func toAvailableOrder(v queries.AvailableOrder) servers.AvailableOrder {
	return servers.AvailableOrder{
		Id:               v.ID.Google(),
		Type:             v.Type.String(),
		Address:          v.Address,
		AerialDistanceKm: v.AerialDistanceKm,
		OpenedAt:         v.OpenedAt,
		ScheduleStatus:   v.ScheduleStatus.String(),
	}
}

// toOrderID converts a decoded path or body identifier into the domain type.
// The zero UUID is rejected.
func toOrderID(name string, id servers.OrderId) (kernel.UUID, error) {
	u, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return u, nil
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
