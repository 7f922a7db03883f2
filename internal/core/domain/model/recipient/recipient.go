// Package recipient contains the Recipient aggregate: the person and address
// an order ships to. No two recipients may share the same name, postal code
// and street number; the creation handler enforces that against the datastore.
package recipient

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var (
	// ErrRecipientIsNotConstructed is returned when a Recipient instance was not created
	// through the NewRecipient or RestoreRecipient factory methods.
	ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient or RestoreRecipient constructor")
)

// Recipient represents a delivery destination: a named person with a postal address.
type Recipient struct {
	id                kernel.UUID
	name              string
	street            string
	number            int
	additionalDetails string
	city              string
	state             string
	postalCode        string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRecipient creates a new Recipient. Additional address details are optional;
// every other address field is required.
func NewRecipient(
	id kernel.UUID,
	name, street string,
	number int,
	additionalDetails, city, state, postalCode string,
	createdAt time.Time,
) (*Recipient, error) {
	r := &Recipient{
		additionalDetails: additionalDetails,
		createdAt:         createdAt,
		updatedAt:         createdAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setStreet(street),
		r.setNumber(number),
		r.setCity(city),
		r.setState(state),
		r.setPostalCode(postalCode),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecipient reconstructs a Recipient from persistence.
func RestoreRecipient(
	id kernel.UUID,
	name, street string,
	number int,
	additionalDetails, city, state, postalCode string,
	createdAt, updatedAt time.Time,
) (*Recipient, error) {
	r, err := NewRecipient(id, name, street, number, additionalDetails, city, state, postalCode, createdAt)
	if err != nil {
		return nil, err
	}
	r.updatedAt = updatedAt
	return r, nil
}

// Validate ensures the Recipient was created through a factory method.
func (r *Recipient) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipientIsNotConstructed
	}
	return nil
}

// ID returns the recipient's unique identifier.
func (r *Recipient) ID() kernel.UUID { return r.id }

// Name returns the recipient's name.
func (r *Recipient) Name() string { return r.name }

// Street returns the street of the delivery address.
func (r *Recipient) Street() string { return r.street }

// Number returns the street number of the delivery address.
func (r *Recipient) Number() int { return r.number }

// AdditionalDetails returns the optional address complement (apartment, floor, ...).
func (r *Recipient) AdditionalDetails() string { return r.additionalDetails }

// City returns the city of the delivery address.
func (r *Recipient) City() string { return r.city }

// State returns the state of the delivery address.
func (r *Recipient) State() string { return r.state }

// PostalCode returns the postal code of the delivery address.
func (r *Recipient) PostalCode() string { return r.postalCode }

// CreatedAt returns the creation timestamp.
func (r *Recipient) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (r *Recipient) UpdatedAt() time.Time { return r.updatedAt }

// Rename changes the recipient's name. Uniqueness of the new identity is the
// caller's concern.
func (r *Recipient) Rename(name string, now time.Time) error {
	if err := r.setName(name); err != nil {
		return err
	}
	r.updatedAt = now
	return nil
}

// ChangeAddress replaces the postal address fields.
func (r *Recipient) ChangeAddress(street string, number int, additionalDetails, city, state, postalCode string, now time.Time) error {
	if err := errors.Join(
		r.setStreet(street),
		r.setNumber(number),
		r.setCity(city),
		r.setState(state),
		r.setPostalCode(postalCode),
	); err != nil {
		return err
	}
	r.additionalDetails = additionalDetails
	r.updatedAt = now
	return nil
}

func (r *Recipient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Recipient) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	r.street = street
	return nil
}

func (r *Recipient) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("number")
	}
	r.number = number
	return nil
}

func (r *Recipient) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	r.city = city
	return nil
}

func (r *Recipient) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	r.state = state
	return nil
}

func (r *Recipient) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	r.postalCode = postalCode
	return nil
}
