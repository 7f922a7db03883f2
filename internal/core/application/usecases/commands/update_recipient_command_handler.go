package commands

import (
	"context"
	"errors"
	"time"

	"fastfeet/internal/pkg/errs"
)

// UpdateRecipientCommandHandler handles recipient updates.
//
// When the update changes the uniqueness triple (name, postal code, street
// number), the new identity must not collide with another recipient.
type UpdateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewUpdateRecipientCommandHandler creates a handler for recipient updates.
func NewUpdateRecipientCommandHandler(uowFactory RecipientUoWFactory) UpdateRecipientCommandHandler {
	return UpdateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipient update command.
func (h UpdateRecipientCommandHandler) Handle(ctx context.Context, cmd UpdateRecipientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RecipientRepository()
	rcp, err := repo.Get(ctx, cmd.RecipientID())
	if err != nil {
		return err
	}

	identityChanged := cmd.name != rcp.Name() ||
		cmd.postalCode != rcp.PostalCode() ||
		cmd.number != rcp.Number()
	if identityChanged {
		other, findErr := repo.FindByIdentity(ctx, cmd.name, cmd.postalCode, cmd.number)
		switch {
		case findErr == nil:
			if !other.ID().IsEqual(rcp.ID()) {
				return errs.NewConflictError("recipient already exists")
			}
		case !errors.Is(findErr, errs.ErrObjectNotFound):
			return findErr
		}
	}

	now := time.Now().UTC()
	if err = errors.Join(
		rcp.Rename(cmd.name, now),
		rcp.ChangeAddress(cmd.street, cmd.number, cmd.additionalDetails, cmd.city, cmd.state, cmd.postalCode, now),
	); err != nil {
		return err
	}

	if err = repo.Update(ctx, rcp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
