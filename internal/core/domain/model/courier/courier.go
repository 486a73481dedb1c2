package courier

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrIDIsInvalid is returned for non-positive courier ids.
	ErrIDIsInvalid = errs.NewValueIsInvalidError("courier id")
	// ErrEmploymentStartIsRequired is returned when the employment start is zero.
	ErrEmploymentStartIsRequired = errs.NewValueIsRequiredError("employment start")
	// ErrPersonalMaxDistanceIsInvalid is returned for a personal limit that is not positive.
	ErrPersonalMaxDistanceIsInvalid = errs.NewValueIsInvalidError("personal max distance")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierIsInactive is returned when an inactive courier tries to pick up an order.
	ErrCourierIsInactive = errs.NewValueIsInvalidErrorWithCause(
		"courier", errors.New("courier is not active"))
	// ErrDistanceExceedsLimit is the sentinel behind DistanceExceedsLimitError.
	ErrDistanceExceedsLimit = errors.New("distance exceeds courier's personal limit")
)

// Courier is the aggregate root for a delivery worker.
//
// Couriers are replaced wholesale on update: the application layer builds a
// new value with NewCourier using the same id and hands it to the repository.
// The aggregate therefore exposes no setters after construction.
//
// Example usage:
//
//	contact, _ := courier.NewContact("Alice", "+49 30 1234", "")
//	maxKm := 8.0
//	c, err := courier.NewCourier(7, contact, courier.Bicycle, hiredAt, &maxKm, true)
//	if err != nil {
//	    return err
//	}
//	if err := c.EnsureCanReach(aerialKm); err != nil {
//	    return err
//	}
type Courier struct {
	// id is the stable numeric identifier assigned by the operator
	id int64
	// contact is how the courier is reached
	contact Contact
	// active couriers are the only ones that may pick up orders
	active bool
	// deliveryType selects speed and route profile
	deliveryType DeliveryType
	// employmentStart is when the courier joined
	employmentStart time.Time
	// personalMaxDistance caps the depot-to-order aerial distance, nil means no cap
	personalMaxDistance *float64
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier validates every attribute and returns the courier.
// All violations are aggregated into a single joined error.
func NewCourier(
	id int64,
	contact Contact,
	deliveryType DeliveryType,
	employmentStart time.Time,
	personalMaxDistance *float64,
	active bool,
) (*Courier, error) {
	courier := &Courier{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setContact(contact),
		courier.setDeliveryType(deliveryType),
		courier.setEmploymentStart(employmentStart),
		courier.setPersonalMaxDistance(personalMaxDistance),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// IsEqual compares couriers by id.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id == other.id
}

// Validate checks that the Courier was created through NewCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() int64 {
	return c.id
}

func (c *Courier) Name() string {
	return c.contact.Name()
}

func (c *Courier) Contact() Contact {
	return c.contact
}

func (c *Courier) IsActive() bool {
	return c.active
}

func (c *Courier) DeliveryType() DeliveryType {
	return c.deliveryType
}

func (c *Courier) EmploymentStart() time.Time {
	return c.employmentStart
}

// PersonalMaxDistance returns the courier's cap in kilometres and whether one is set.
func (c *Courier) PersonalMaxDistance() (float64, bool) {
	if c.personalMaxDistance == nil {
		return 0, false
	}
	return *c.personalMaxDistance, true
}

// EnsureActive returns ErrCourierIsInactive for couriers that may not take new work.
func (c *Courier) EnsureActive() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.active {
		return ErrCourierIsInactive
	}
	return nil
}

// CanReach reports whether an order at aerialKm from the depot is within the
// courier's personal limit. Couriers without a limit reach everything.
func (c *Courier) CanReach(aerialKm float64) bool {
	limit, ok := c.PersonalMaxDistance()
	return !ok || aerialKm <= limit
}

// EnsureCanReach is CanReach returning a DistanceExceedsLimitError on failure.
func (c *Courier) EnsureCanReach(aerialKm float64) error {
	if c.CanReach(aerialKm) {
		return nil
	}
	limit, _ := c.PersonalMaxDistance()
	return &DistanceExceedsLimitError{CourierID: c.id, DistanceKm: aerialKm, LimitKm: limit}
}

func (c *Courier) setID(id int64) error {
	if id <= 0 {
		return ErrIDIsInvalid
	}
	c.id = id
	return nil
}

func (c *Courier) setContact(contact Contact) error {
	if contact.Name() == "" {
		return ErrNameIsRequired
	}
	if contact.Phone() == "" {
		return ErrPhoneIsRequired
	}
	c.contact = contact
	return nil
}

func (c *Courier) setDeliveryType(t DeliveryType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.deliveryType = t
	return nil
}

func (c *Courier) setEmploymentStart(start time.Time) error {
	if start.IsZero() {
		return ErrEmploymentStartIsRequired
	}
	c.employmentStart = start
	return nil
}

func (c *Courier) setPersonalMaxDistance(km *float64) error {
	if km == nil {
		c.personalMaxDistance = nil
		return nil
	}
	if *km <= 0 {
		return ErrPersonalMaxDistanceIsInvalid
	}
	v := *km
	c.personalMaxDistance = &v
	return nil
}

// DistanceExceedsLimitError reports an order outside a courier's personal reach.
// It classifies as invalid input.
type DistanceExceedsLimitError struct {
	CourierID  int64
	DistanceKm float64
	LimitKm    float64
}

func (e *DistanceExceedsLimitError) Error() string {
	return fmt.Sprintf("%s: courier %d, %.2f km > %.2f km",
		ErrDistanceExceedsLimit, e.CourierID, e.DistanceKm, e.LimitKm)
}

// Is lets errors.Is match both ErrDistanceExceedsLimit and the invalid-input sentinel.
func (e *DistanceExceedsLimitError) Is(target error) bool {
	return target == ErrDistanceExceedsLimit || target == errs.ErrValueIsInvalid
}
