package delivery

import (
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// EndType is the outcome of a closed delivery.
type EndType int

const (
	UnknownEndType EndType = iota
	Delivered
	Cancelled
	CustomerRefused
	RecipientNotFound
	Failed
)

func getEndTypeStrings() map[EndType]string {
	return map[EndType]string{
		UnknownEndType:    "Unknown",
		Delivered:         "Delivered",
		Cancelled:         "Cancelled",
		CustomerRefused:   "CustomerRefused",
		RecipientNotFound: "RecipientNotFound",
		Failed:            "Failed",
	}
}

// EndTypes returns the full outcome set in declaration order.
func EndTypes() []EndType {
	return []EndType{Delivered, Cancelled, CustomerRefused, RecipientNotFound, Failed}
}

// ParseEndType maps a case-insensitive name to its EndType.
func ParseEndType(s string) (EndType, error) {
	for _, t := range EndTypes() {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return UnknownEndType, errs.NewValueIsInvalidErrorWithCause("end type", fmt.Errorf("%q is not a known end type", s))
}

func (t EndType) Validate() error {
	if t < Delivered || t > Failed {
		return errs.NewValueIsInvalidErrorWithCause("end type", fmt.Errorf("%d is not a valid end type", t))
	}
	return nil
}

func (t EndType) String() string {
	if str, ok := getEndTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// OrderStatus is the order status implied when this outcome is the latest one.
// Failed and RecipientNotFound put the order back into the pool.
func (t EndType) OrderStatus() order.Status {
	switch t {
	case Delivered:
		return order.Delivered
	case CustomerRefused:
		return order.Refused
	case Cancelled:
		return order.Cancelled
	case RecipientNotFound, Failed:
		return order.Open
	default:
		return order.UnknownStatus
	}
}
