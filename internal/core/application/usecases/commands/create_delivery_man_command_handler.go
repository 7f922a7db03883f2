package commands

import (
	"context"
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/deliveryman"
	"fastfeet/internal/pkg/errs"
)

// CreateDeliveryManCommandHandler handles delivery man registration.
//
// Email addresses are unique across delivery men, and an avatar reference
// must point at an uploaded file.
type CreateDeliveryManCommandHandler struct {
	uowFactory DeliveryManUoWFactory
}

// NewCreateDeliveryManCommandHandler creates a handler for delivery man registration.
func NewCreateDeliveryManCommandHandler(uowFactory DeliveryManUoWFactory) CreateDeliveryManCommandHandler {
	return CreateDeliveryManCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery man registration command.
func (h CreateDeliveryManCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryManCommand) error {
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

	_, err := repo.FindByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return errs.NewConflictError("delivery man already exists")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	now := time.Now().UTC()
	dm, err := deliveryman.NewDeliveryMan(cmd.DeliveryManID(), cmd.Name(), cmd.Email(), now)
	if err != nil {
		return err
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

	if err = repo.Add(ctx, dm); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
