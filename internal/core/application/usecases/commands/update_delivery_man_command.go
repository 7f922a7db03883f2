package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryManCommandIsNotConstructed = errors.New(
		"UpdateDeliveryManCommand must be created via NewUpdateDeliveryManCommand constructor",
	)
)

// UpdateDeliveryManCommand represents a partial update of a delivery man's
// profile. Empty fields are left unchanged; at least one field must be set.
type UpdateDeliveryManCommand struct { //nolint:recvcheck //using for validation
	deliveryManID kernel.UUID
	name          string
	email         string
	avatarID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryManCommand creates a command to update a delivery man's profile.
func NewUpdateDeliveryManCommand(deliveryManID kernel.UUID, name, email string, avatarID *kernel.UUID) (UpdateDeliveryManCommand, error) {
	cmd := UpdateDeliveryManCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryManID(deliveryManID),
		cmd.setAvatarID(avatarID),
	); err != nil {
		return UpdateDeliveryManCommand{}, err
	}

	if name == "" && email == "" && avatarID == nil {
		return UpdateDeliveryManCommand{}, errs.NewValueIsRequiredError("at least one field to update")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryManCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryManCommandIsNotConstructed)
}

// DeliveryManID returns the identifier of the delivery man to update.
func (c UpdateDeliveryManCommand) DeliveryManID() kernel.UUID {
	return c.deliveryManID
}

// Name returns the new name, or the empty string when unchanged.
func (c UpdateDeliveryManCommand) Name() string {
	return c.name
}

// Email returns the new email address, or the empty string when unchanged.
func (c UpdateDeliveryManCommand) Email() string {
	return c.email
}

// AvatarID returns the new avatar file reference, or nil when unchanged.
func (c UpdateDeliveryManCommand) AvatarID() *kernel.UUID {
	return c.avatarID
}

func (c *UpdateDeliveryManCommand) setDeliveryManID(deliveryManID kernel.UUID) error {
	if err := deliveryManID.Validate(); err != nil {
		return err
	}
	c.deliveryManID = deliveryManID
	return nil
}

func (c *UpdateDeliveryManCommand) setAvatarID(avatarID *kernel.UUID) error {
	if avatarID == nil {
		return nil
	}
	if err := avatarID.Validate(); err != nil {
		return err
	}
	c.avatarID = avatarID
	return nil
}
