// Package deliveryman contains the DeliveryMan aggregate: the courier that
// picks orders up and delivers them. Email addresses are unique across all
// delivery men; the creation and update handlers enforce that against the
// datastore.
package deliveryman

import (
	"errors"
	"net/mail"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var (
	// ErrDeliveryManIsNotConstructed is returned when a DeliveryMan instance was not
	// created through the NewDeliveryMan or RestoreDeliveryMan factory methods.
	ErrDeliveryManIsNotConstructed = errors.New(
		"DeliveryMan must be created via NewDeliveryMan or RestoreDeliveryMan constructor",
	)
)

// DeliveryMan represents a courier who is notified by email about the orders
// assigned to them. The avatar is an optional file reference.
type DeliveryMan struct {
	id       kernel.UUID
	name     string
	email    string
	avatarID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDeliveryMan creates a new DeliveryMan with a validated email address.
// Email uniqueness is the caller's concern.
func NewDeliveryMan(id kernel.UUID, name, email string, createdAt time.Time) (*DeliveryMan, error) {
	dm := &DeliveryMan{
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		dm.setID(id),
		dm.setName(name),
		dm.setEmail(email),
	); err != nil {
		return nil, err
	}

	return dm, nil
}

// RestoreDeliveryMan reconstructs a DeliveryMan from persistence.
func RestoreDeliveryMan(
	id kernel.UUID,
	name, email string,
	avatarID *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*DeliveryMan, error) {
	dm, err := NewDeliveryMan(id, name, email, createdAt)
	if err != nil {
		return nil, err
	}
	dm.avatarID = avatarID
	dm.updatedAt = updatedAt
	return dm, nil
}

// Validate ensures the DeliveryMan was created through a factory method.
func (dm *DeliveryMan) Validate() error {
	if dm == nil || !dm.isConstructed {
		return ErrDeliveryManIsNotConstructed
	}
	return nil
}

// ID returns the delivery man's unique identifier.
func (dm *DeliveryMan) ID() kernel.UUID { return dm.id }

// Name returns the delivery man's name.
func (dm *DeliveryMan) Name() string { return dm.name }

// Email returns the delivery man's notification address.
func (dm *DeliveryMan) Email() string { return dm.email }

// AvatarID returns the avatar file reference, or nil if none is set.
func (dm *DeliveryMan) AvatarID() *kernel.UUID { return dm.avatarID }

// CreatedAt returns the creation timestamp.
func (dm *DeliveryMan) CreatedAt() time.Time { return dm.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (dm *DeliveryMan) UpdatedAt() time.Time { return dm.updatedAt }

// Rename changes the delivery man's name.
func (dm *DeliveryMan) Rename(name string, now time.Time) error {
	if err := dm.setName(name); err != nil {
		return err
	}
	dm.updatedAt = now
	return nil
}

// ChangeEmail replaces the notification address. Uniqueness of the new address
// is the caller's concern.
func (dm *DeliveryMan) ChangeEmail(email string, now time.Time) error {
	if err := dm.setEmail(email); err != nil {
		return err
	}
	dm.updatedAt = now
	return nil
}

// ChangeAvatar points the delivery man at a different avatar file.
// File existence is the caller's concern.
func (dm *DeliveryMan) ChangeAvatar(avatarID kernel.UUID, now time.Time) error {
	if err := avatarID.Validate(); err != nil {
		return err
	}
	dm.avatarID = &avatarID
	dm.updatedAt = now
	return nil
}

func (dm *DeliveryMan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	dm.id = id
	return nil
}

func (dm *DeliveryMan) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	dm.name = name
	return nil
}

func (dm *DeliveryMan) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	dm.email = email
	return nil
}
