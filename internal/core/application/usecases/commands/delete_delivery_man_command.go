package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrDeleteDeliveryManCommandIsNotConstructed = errors.New(
		"DeleteDeliveryManCommand must be created via NewDeleteDeliveryManCommand constructor",
	)
)

// DeleteDeliveryManCommand represents a request to remove a delivery man.
type DeleteDeliveryManCommand struct { //nolint:recvcheck //using for validation
	deliveryManID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryManCommand creates a command to remove a delivery man.
func NewDeleteDeliveryManCommand(deliveryManID kernel.UUID) (DeleteDeliveryManCommand, error) {
	cmd := DeleteDeliveryManCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryManID(deliveryManID); err != nil {
		return DeleteDeliveryManCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDeliveryManCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryManCommandIsNotConstructed)
}

// DeliveryManID returns the identifier of the delivery man to remove.
func (c DeleteDeliveryManCommand) DeliveryManID() kernel.UUID {
	return c.deliveryManID
}

func (c *DeleteDeliveryManCommand) setDeliveryManID(deliveryManID kernel.UUID) error {
	if err := deliveryManID.Validate(); err != nil {
		return err
	}
	c.deliveryManID = deliveryManID
	return nil
}
