// Package settings holds the operational parameters shared by every part of
// the engine, including the current value of the virtual clock.
package settings

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	ErrAdminIDIsInvalid             = errs.NewValueIsInvalidError("admin id")
	ErrAdminPasswordIsRequired      = errs.NewValueIsRequiredError("admin password")
	ErrMaxGeneralDistanceIsInvalid  = errs.NewValueIsInvalidError("max general delivery distance")
	ErrMaxDeliveryTimeSpanIsInvalid = errs.NewValueIsInvalidError("max delivery time span")
	ErrRiskRangeIsInvalid           = errs.NewValueIsInvalidError("risk range")
	ErrInactivityRangeIsInvalid     = errs.NewValueIsInvalidError("inactivity range")
	ErrCompanyAddressIsRequired     = errs.NewValueIsRequiredError("company address")
)

// Config is a value snapshot of the engine parameters.
//
// Copies handed out by the config store are independent: use Clone before
// sharing a Config that will be modified.
type Config struct {
	AdminID       int64
	AdminPassword string

	AvgCarSpeedKmh        float64
	AvgMotorcycleSpeedKmh float64
	AvgBicycleSpeedKmh    float64
	AvgOnFootSpeedKmh     float64

	// MaxGeneralDeliveryDistanceKm caps the aerial depot-to-order distance of new orders and of
	// pickups by couriers without a personal limit; nil disables it.
	MaxGeneralDeliveryDistanceKm *float64
	// MaxDeliveryTimeSpan is the time from opening an order to its absolute deadline.
	MaxDeliveryTimeSpan time.Duration
	// RiskRange is how long before a deadline an order becomes AtRisk.
	RiskRange time.Duration
	// InactivityRange is reserved for idle-courier detection.
	InactivityRange time.Duration

	CompanyAddress  string
	CompanyLocation kernel.Coordinates

	// Clock is the current virtual time.
	Clock time.Time
}

// Defaults returns the startup configuration with the clock set to clock.
func Defaults(clock time.Time) Config {
	depot, _ := kernel.NewCoordinates(52.521918, 13.413215)
	maxDistance := 30.0

	return Config{
		AdminID:                      1,
		AdminPassword:                "admin",
		AvgCarSpeedKmh:               40,
		AvgMotorcycleSpeedKmh:        35,
		AvgBicycleSpeedKmh:           15,
		AvgOnFootSpeedKmh:            5,
		MaxGeneralDeliveryDistanceKm: &maxDistance,
		MaxDeliveryTimeSpan:          2 * time.Hour,
		RiskRange:                    10 * time.Minute,
		InactivityRange:              48 * time.Hour,
		CompanyAddress:               "Alexanderplatz 1, 10178 Berlin",
		CompanyLocation:              depot,
		Clock:                        clock,
	}
}

// Validate checks every rule and reports all violations together.
// The company location is not checked here because it is resolved from the
// address after validation succeeds.
func (c Config) Validate() error {
	var problems []error

	if c.AdminID <= 0 {
		problems = append(problems, ErrAdminIDIsInvalid)
	}
	if c.AdminPassword == "" {
		problems = append(problems, ErrAdminPasswordIsRequired)
	}
	for _, speed := range []struct {
		name  string
		value float64
	}{
		{"average car speed", c.AvgCarSpeedKmh},
		{"average motorcycle speed", c.AvgMotorcycleSpeedKmh},
		{"average bicycle speed", c.AvgBicycleSpeedKmh},
		{"average on foot speed", c.AvgOnFootSpeedKmh},
	} {
		if !(speed.value > 0) {
			problems = append(problems, errs.NewValueIsInvalidError(speed.name))
		}
	}
	if c.MaxGeneralDeliveryDistanceKm != nil && !(*c.MaxGeneralDeliveryDistanceKm > 0) {
		problems = append(problems, ErrMaxGeneralDistanceIsInvalid)
	}
	if c.MaxDeliveryTimeSpan <= 0 {
		problems = append(problems, ErrMaxDeliveryTimeSpanIsInvalid)
	}
	if c.RiskRange <= 0 {
		problems = append(problems, ErrRiskRangeIsInvalid)
	}
	if c.InactivityRange <= 0 {
		problems = append(problems, ErrInactivityRangeIsInvalid)
	}
	if strings.TrimSpace(c.CompanyAddress) == "" {
		problems = append(problems, ErrCompanyAddressIsRequired)
	}

	return errors.Join(problems...)
}

// SpeedFor returns the average speed of a delivery type in km/h.
// An unrecognized type is a programming error reported as MissingPropertyError.
func (c Config) SpeedFor(t courier.DeliveryType) (float64, error) {
	switch t {
	case courier.Car:
		return c.AvgCarSpeedKmh, nil
	case courier.Motorcycle:
		return c.AvgMotorcycleSpeedKmh, nil
	case courier.Bicycle:
		return c.AvgBicycleSpeedKmh, nil
	case courier.OnFoot:
		return c.AvgOnFootSpeedKmh, nil
	default:
		return 0, errs.NewMissingPropertyError("average speed", t)
	}
}

// MaxGeneralDistance returns the general order reach and whether one is configured.
func (c Config) MaxGeneralDistance() (float64, bool) {
	if c.MaxGeneralDeliveryDistanceKm == nil {
		return 0, false
	}
	return *c.MaxGeneralDeliveryDistanceKm, true
}

// Clone returns a copy that shares no memory with c.
func (c Config) Clone() Config {
	out := c
	if c.MaxGeneralDeliveryDistanceKm != nil {
		v := *c.MaxGeneralDeliveryDistanceKm
		out.MaxGeneralDeliveryDistanceKm = &v
	}
	return out
}

// Equal compares every field, the optional distance by value.
func (c Config) Equal(other Config) bool {
	return c.AdminID == other.AdminID &&
		c.AdminPassword == other.AdminPassword &&
		c.AvgCarSpeedKmh == other.AvgCarSpeedKmh &&
		c.AvgMotorcycleSpeedKmh == other.AvgMotorcycleSpeedKmh &&
		c.AvgBicycleSpeedKmh == other.AvgBicycleSpeedKmh &&
		c.AvgOnFootSpeedKmh == other.AvgOnFootSpeedKmh &&
		equalOptional(c.MaxGeneralDeliveryDistanceKm, other.MaxGeneralDeliveryDistanceKm) &&
		c.MaxDeliveryTimeSpan == other.MaxDeliveryTimeSpan &&
		c.RiskRange == other.RiskRange &&
		c.InactivityRange == other.InactivityRange &&
		c.CompanyAddress == other.CompanyAddress &&
		c.CompanyLocation.Latitude() == other.CompanyLocation.Latitude() &&
		c.CompanyLocation.Longitude() == other.CompanyLocation.Longitude() &&
		c.Clock.Equal(other.Clock)
}

func equalOptional(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
