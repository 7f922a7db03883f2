package commands

import (
	"context"
	"errors"
	"time"

	"fastfeet/internal/pkg/errs"
)

// UpdateDeliveryManCommandHandler handles delivery man profile updates.
//
// An email change must not collide with another delivery man, and a new
// avatar reference must point at an uploaded file.
type UpdateDeliveryManCommandHandler struct {
	uowFactory DeliveryManUoWFactory
}

// NewUpdateDeliveryManCommandHandler creates a handler for profile updates.
func NewUpdateDeliveryManCommandHandler(uowFactory DeliveryManUoWFactory) UpdateDeliveryManCommandHandler {
	return UpdateDeliveryManCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h UpdateDeliveryManCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryManCommand) error {
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

	repo := uow.DeliveryManRepository()
	dm, err := repo.Get(ctx, cmd.DeliveryManID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	if name := cmd.Name(); name != "" {
		if err = dm.Rename(name, now); err != nil {
			return err
		}
	}

	if email := cmd.Email(); email != "" && email != dm.Email() {
		other, findErr := repo.FindByEmail(ctx, email)
		switch {
		case findErr == nil:
			if !other.ID().IsEqual(dm.ID()) {
				return errs.NewConflictError("delivery man already exists")
			}
		case !errors.Is(findErr, errs.ErrObjectNotFound):
			return findErr
		}
		if err = dm.ChangeEmail(email, now); err != nil {
			return err
		}
	}

	if avatarID := cmd.AvatarID(); avatarID != nil {
		avatar, fileErr := uow.FileRepository().Get(ctx, *avatarID)
		if fileErr != nil {
			return fileErr
		}
		if err = dm.ChangeAvatar(avatar.ID(), now); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, dm); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
