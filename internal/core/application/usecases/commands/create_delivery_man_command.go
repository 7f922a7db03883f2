package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrCreateDeliveryManCommandIsNotConstructed = errors.New(
		"CreateDeliveryManCommand must be created via NewCreateDeliveryManCommand constructor",
	)
)

// CreateDeliveryManCommand represents a request to register a new delivery man.
type CreateDeliveryManCommand struct { //nolint:recvcheck //using for validation
	deliveryManID kernel.UUID
	name          string
	email         string
	avatarID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryManCommand creates a command to register a delivery man.
// The avatar is optional; name and email validation is delegated to the
// aggregate constructor.
func NewCreateDeliveryManCommand(deliveryManID kernel.UUID, name, email string, avatarID *kernel.UUID) (CreateDeliveryManCommand, error) {
	cmd := CreateDeliveryManCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryManID(deliveryManID),
		cmd.setAvatarID(avatarID),
	); err != nil {
		return CreateDeliveryManCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryManCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryManCommandIsNotConstructed)
}

// DeliveryManID returns the identifier assigned to the new delivery man.
func (c CreateDeliveryManCommand) DeliveryManID() kernel.UUID {
	return c.deliveryManID
}

// Name returns the delivery man's name.
func (c CreateDeliveryManCommand) Name() string {
	return c.name
}

// Email returns the delivery man's email address.
func (c CreateDeliveryManCommand) Email() string {
	return c.email
}

// AvatarID returns the optional avatar file reference.
func (c CreateDeliveryManCommand) AvatarID() *kernel.UUID {
	return c.avatarID
}

func (c *CreateDeliveryManCommand) setDeliveryManID(deliveryManID kernel.UUID) error {
	if err := deliveryManID.Validate(); err != nil {
		return err
	}
	c.deliveryManID = deliveryManID
	return nil
}

func (c *CreateDeliveryManCommand) setAvatarID(avatarID *kernel.UUID) error {
	if avatarID == nil {
		return nil
	}
	if err := avatarID.Validate(); err != nil {
		return err
	}
	c.avatarID = avatarID
	return nil
}
