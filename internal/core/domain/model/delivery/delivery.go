package delivery

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// AdministrativeCourierID marks deliveries recorded by an operator without a courier.
const AdministrativeCourierID int64 = 0

var (
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrCourierIDIsInvalid is returned for a negative courier id, or 0 on a courier delivery.
	ErrCourierIDIsInvalid = errs.NewValueIsInvalidError("courier id")
	// ErrStartedAtIsRequired is returned when the start timestamp is zero.
	ErrStartedAtIsRequired = errs.NewValueIsRequiredError("started at")
	// ErrActualDistanceIsInvalid is returned for a negative recorded distance.
	ErrActualDistanceIsInvalid = errs.NewValueIsInvalidError("actual distance")
	// ErrEndedBeforeStart is returned when a delivery would close before it started.
	ErrEndedBeforeStart = errs.NewValueIsInvalidErrorWithCause(
		"ended at", errors.New("delivery cannot end before it started"))
)

// Delivery is one pickup-to-outcome attempt.
//
// It is active while endedAt is nil. Close is the only mutation and succeeds once.
type Delivery struct {
	id             kernel.UUID
	orderID        kernel.UUID
	courierID      int64
	deliveryType   courier.DeliveryType
	startedAt      time.Time
	actualDistance *float64
	endType        EndType
	endedAt        *time.Time
	guard          guard.ConstructorGuard
}

// NewDelivery creates an active delivery for a courier pickup.
// actualDistance is the rounded route length, nil when it was not measured.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID int64,
	deliveryType courier.DeliveryType,
	startedAt time.Time,
	actualDistance *float64,
) (*Delivery, error) {
	d := &Delivery{guard: guard.NewConstructorGuard()}

	var courierErr error
	if courierID <= AdministrativeCourierID {
		courierErr = ErrCourierIDIsInvalid
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		courierErr,
		d.setDeliveryType(deliveryType),
		d.setStartedAt(startedAt),
		d.setActualDistance(actualDistance),
	); err != nil {
		return nil, err
	}
	d.courierID = courierID

	return d, nil
}

// NewAdministrativeCancellation records an operator cancelling an order that
// no courier holds. The record starts and ends at the same instant.
func NewAdministrativeCancellation(id kernel.UUID, orderID kernel.UUID, at time.Time) (*Delivery, error) {
	d := &Delivery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setStartedAt(at),
	); err != nil {
		return nil, err
	}
	d.courierID = AdministrativeCourierID
	d.endType = Cancelled
	d.endedAt = &at

	return d, nil
}

// RestoreDelivery rebuilds a delivery read from storage, closed or not.
// endType must be UnknownEndType exactly when endedAt is nil.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID int64,
	deliveryType courier.DeliveryType,
	startedAt time.Time,
	actualDistance *float64,
	endType EndType,
	endedAt *time.Time,
) (*Delivery, error) {
	d := &Delivery{guard: guard.NewConstructorGuard()}

	var courierErr, typeErr, endErr error
	switch {
	case courierID < AdministrativeCourierID:
		courierErr = ErrCourierIDIsInvalid
	case courierID > AdministrativeCourierID:
		typeErr = d.setDeliveryType(deliveryType)
	}

	if endedAt != nil {
		if err := endType.Validate(); err != nil {
			endErr = err
		} else if endedAt.Before(startedAt) {
			endErr = ErrEndedBeforeStart
		}
	} else if endType != UnknownEndType {
		endErr = errs.NewValueIsInvalidErrorWithCause("end type", fmt.Errorf("%s set on an active delivery", endType))
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		courierErr,
		typeErr,
		d.setStartedAt(startedAt),
		d.setActualDistance(actualDistance),
		endErr,
	); err != nil {
		return nil, err
	}
	d.courierID = courierID
	if endedAt != nil {
		at := *endedAt
		d.endType = endType
		d.endedAt = &at
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID                    { return d.id }
func (d *Delivery) OrderID() kernel.UUID               { return d.orderID }
func (d *Delivery) CourierID() int64                   { return d.courierID }
func (d *Delivery) DeliveryType() courier.DeliveryType { return d.deliveryType }
func (d *Delivery) StartedAt() time.Time               { return d.startedAt }

// ActualDistance returns the recorded route length and whether it was recorded.
func (d *Delivery) ActualDistance() (float64, bool) {
	if d.actualDistance == nil {
		return 0, false
	}
	return *d.actualDistance, true
}

// EndType returns the outcome and whether the delivery is closed.
func (d *Delivery) EndType() (EndType, bool) {
	return d.endType, d.endedAt != nil
}

// EndedAt returns the closing time and whether the delivery is closed.
func (d *Delivery) EndedAt() (time.Time, bool) {
	if d.endedAt == nil {
		return time.Time{}, false
	}
	return *d.endedAt, true
}

// IsActive reports whether the delivery has not been closed yet.
func (d *Delivery) IsActive() bool {
	return d.endedAt == nil
}

// IsAdministrative reports whether the record was made by an operator rather than a courier.
func (d *Delivery) IsAdministrative() bool {
	return d.courierID == AdministrativeCourierID
}

// HasStartedBy reports whether the delivery had started at the given time.
func (d *Delivery) HasStartedBy(at time.Time) bool {
	return !d.startedAt.After(at)
}

// Close sets the outcome. It fails with ErrDeliveryAlreadyClosed on a closed
// delivery and with ErrEndedBeforeStart when at precedes the start.
func (d *Delivery) Close(endType EndType, at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.IsActive() {
		return ErrDeliveryAlreadyClosed
	}
	if err := endType.Validate(); err != nil {
		return err
	}
	if at.Before(d.startedAt) {
		return ErrEndedBeforeStart
	}

	d.endType = endType
	d.endedAt = &at
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setDeliveryType(t courier.DeliveryType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	d.deliveryType = t
	return nil
}

func (d *Delivery) setStartedAt(at time.Time) error {
	if at.IsZero() {
		return ErrStartedAtIsRequired
	}
	d.startedAt = at
	return nil
}

func (d *Delivery) setActualDistance(km *float64) error {
	if km == nil {
		d.actualDistance = nil
		return nil
	}
	if *km < 0 {
		return ErrActualDistanceIsInvalid
	}
	v := *km
	d.actualDistance = &v
	return nil
}
