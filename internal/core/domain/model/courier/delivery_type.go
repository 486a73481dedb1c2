package courier

import (
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// DeliveryType is the vehicle a courier uses. It determines the average
// speed taken from settings and the routing profile for distance lookups.
type DeliveryType int

const (
	// UnknownDeliveryType is the zero value and never valid for a courier.
	UnknownDeliveryType DeliveryType = iota
	Car
	Motorcycle
	Bicycle
	OnFoot
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		UnknownDeliveryType: "Unknown",
		Car:                 "Car",
		Motorcycle:          "Motorcycle",
		Bicycle:             "Bicycle",
		OnFoot:              "OnFoot",
	}
}

// DeliveryTypes lists every valid delivery type in declaration order.
func DeliveryTypes() []DeliveryType {
	return []DeliveryType{Car, Motorcycle, Bicycle, OnFoot}
}

// ParseDeliveryType maps a case-insensitive name to its DeliveryType.
func ParseDeliveryType(s string) (DeliveryType, error) {
	for _, t := range DeliveryTypes() {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause(
		"delivery type", fmt.Errorf("%q is not a known delivery type", s))
}

func (t DeliveryType) Validate() error {
	if t < Car || t > OnFoot {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery type", fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}

func (t DeliveryType) String() string {
	if str, ok := getDeliveryTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Profile returns the road network the vehicle travels on.
// An unrecognized type is a programming error and yields a MissingPropertyError.
func (t DeliveryType) Profile() (kernel.RouteProfile, error) {
	switch t {
	case Car, Motorcycle:
		return kernel.RouteProfileDriving, nil
	case Bicycle, OnFoot:
		return kernel.RouteProfileWalking, nil
	default:
		return 0, errs.NewMissingPropertyError("route profile", t)
	}
}
