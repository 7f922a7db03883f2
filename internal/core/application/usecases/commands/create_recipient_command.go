package commands

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrCreateRecipientCommandIsNotConstructed = errors.New(
		"CreateRecipientCommand must be created via NewCreateRecipientCommand constructor",
	)
)

// CreateRecipientCommand represents a request to register a new recipient.
type CreateRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID       kernel.UUID
	name              string
	street            string
	number            int
	additionalDetails string
	city              string
	state             string
	postalCode        string

	guard guard.ConstructorGuard
}

// NewCreateRecipientCommand creates a command to register a recipient.
// Field level validation is delegated to the aggregate constructor; the
// command only guards identifier validity.
func NewCreateRecipientCommand(
	recipientID kernel.UUID,
	name, street string,
	number int,
	additionalDetails, city, state, postalCode string,
) (CreateRecipientCommand, error) {
	cmd := CreateRecipientCommand{
		name:              name,
		street:            street,
		number:            number,
		additionalDetails: additionalDetails,
		city:              city,
		state:             state,
		postalCode:        postalCode,
		guard:             guard.NewConstructorGuard(),
	}

	if err := cmd.setRecipientID(recipientID); err != nil {
		return CreateRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecipientCommandIsNotConstructed)
}

// RecipientID returns the identifier assigned to the new recipient.
func (c CreateRecipientCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// Name returns the recipient's name.
func (c CreateRecipientCommand) Name() string {
	return c.name
}

func (c *CreateRecipientCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}

func (c CreateRecipientCommand) toAggregate(createdAt time.Time) (*recipient.Recipient, error) {
	return recipient.NewRecipient(
		c.recipientID,
		c.name, c.street,
		c.number,
		c.additionalDetails, c.city, c.state, c.postalCode,
		createdAt,
	)
}
