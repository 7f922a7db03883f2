package commands

import (
	"context"
	"errors"
	"time"

	"fastfeet/internal/pkg/errs"
)

// CreateRecipientCommandHandler handles recipient registration.
//
// No two recipients may share the same name, postal code and street number.
type CreateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewCreateRecipientCommandHandler creates a handler for recipient registration.
func NewCreateRecipientCommandHandler(uowFactory RecipientUoWFactory) CreateRecipientCommandHandler {
	return CreateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipient registration command.
func (h CreateRecipientCommandHandler) Handle(ctx context.Context, cmd CreateRecipientCommand) error {
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

	_, err := repo.FindByIdentity(ctx, cmd.name, cmd.postalCode, cmd.number)
	switch {
	case err == nil:
		return errs.NewConflictError("recipient already exists")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	rcp, err := cmd.toAggregate(time.Now().UTC())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, rcp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
