package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CourierDetails are the editable attributes of a courier.
type CourierDetails struct {
	Name                  string
	Phone                 string
	Email                 string
	DeliveryType          courier.DeliveryType
	Active                bool
	PersonalMaxDistanceKm *float64
	// EmploymentStart defaults to the current virtual time when zero.
	EmploymentStart time.Time
}

// CreateCourierCommand registers a new courier. The store assigns the id.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand(CourierDetails{
//	    Name:         "Jane Roe",
//	    Phone:        "+49 30 1234567",
//	    DeliveryType: courier.Bicycle,
//	    Active:       true,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateCourierCommand struct {
	contact courier.Contact
	details CourierDetails

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand validates the contact data, the delivery type and
// the personal reach before anything is stored.
func NewCreateCourierCommand(details CourierDetails) (CreateCourierCommand, error) {
	contact, err := validateCourierDetails(details)
	if err != nil {
		return CreateCourierCommand{}, err
	}

	return CreateCourierCommand{
		contact: contact,
		details: copyCourierDetails(details),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) Contact() courier.Contact { return c.contact }
func (c CreateCourierCommand) Details() CourierDetails  { return copyCourierDetails(c.details) }

func validateCourierDetails(details CourierDetails) (courier.Contact, error) {
	contact, contactErr := courier.NewContact(details.Name, details.Phone, details.Email)

	var distanceErr error
	if details.PersonalMaxDistanceKm != nil && !(*details.PersonalMaxDistanceKm > 0) {
		distanceErr = courier.ErrPersonalMaxDistanceIsInvalid
	}

	if err := errors.Join(contactErr, details.DeliveryType.Validate(), distanceErr); err != nil {
		return courier.Contact{}, err
	}
	return contact, nil
}

func copyCourierDetails(details CourierDetails) CourierDetails {
	if details.PersonalMaxDistanceKm != nil {
		km := *details.PersonalMaxDistanceKm
		details.PersonalMaxDistanceKm = &km
	}
	return details
}
