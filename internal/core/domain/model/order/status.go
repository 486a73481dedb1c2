package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle position of an order, derived from its deliveries.
//
// State machine:
//
//	Open --pick up--> InProgress --Delivered--> Delivered
//	                  InProgress --CustomerRefused--> Refused
//	                  InProgress --Cancelled--> Cancelled
//	                  InProgress --Failed|RecipientNotFound--> Open
//	Open --admin cancel--> Cancelled
//
// Delivered, Refused and Cancelled are terminal.
type Status int

const (
	UnknownStatus Status = iota
	Open
	InProgress
	Delivered
	Refused
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Open:          "Open",
		InProgress:    "InProgress",
		Delivered:     "Delivered",
		Refused:       "Refused",
		Cancelled:     "Cancelled",
	}
}

func (s Status) Validate() error {
	if s < Open || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further delivery may be attempted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Refused || s == Cancelled
}
