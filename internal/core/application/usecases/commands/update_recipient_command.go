package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrUpdateRecipientCommandIsNotConstructed = errors.New(
		"UpdateRecipientCommand must be created via NewUpdateRecipientCommand constructor",
	)
)

// UpdateRecipientCommand represents a full replacement of a recipient's name
// and postal address.
type UpdateRecipientCommand struct { //nolint:recvcheck //using for validation
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

// NewUpdateRecipientCommand creates a command to update a recipient.
func NewUpdateRecipientCommand(
	recipientID kernel.UUID,
	name, street string,
	number int,
	additionalDetails, city, state, postalCode string,
) (UpdateRecipientCommand, error) {
	cmd := UpdateRecipientCommand{
		name:              name,
		street:            street,
		number:            number,
		additionalDetails: additionalDetails,
		city:              city,
		state:             state,
		postalCode:        postalCode,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientID(recipientID),
		cmd.requireName(name),
	); err != nil {
		return UpdateRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRecipientCommandIsNotConstructed)
}

// RecipientID returns the identifier of the recipient to update.
func (c UpdateRecipientCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// Name returns the new recipient name.
func (c UpdateRecipientCommand) Name() string {
	return c.name
}

func (c *UpdateRecipientCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}

func (c *UpdateRecipientCommand) requireName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}
