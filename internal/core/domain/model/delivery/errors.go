package delivery

import "dispatch/internal/pkg/errs"

// State conflicts raised by pickup, delivery and cancellation.
var (
	ErrDeliveryAlreadyClosed      = errs.NewConflictError("delivery already closed")
	ErrCourierAlreadyHasDelivery  = errs.NewConflictError("courier already has an active delivery")
	ErrOrderAlreadyAssigned       = errs.NewConflictError("order already assigned")
	ErrCourierHasNoActiveDelivery = errs.NewConflictError("courier has no active delivery")
)
