package commands

import (
	"context"
)

// DeleteDeliveryManCommandHandler handles delivery man removal.
//
// Removal is unconditional: orders assigned to the delivery man are not
// reassigned or touched in any way.
type DeleteDeliveryManCommandHandler struct {
	uowFactory DeliveryManUoWFactory
}

// NewDeleteDeliveryManCommandHandler creates a handler for delivery man removal.
func NewDeleteDeliveryManCommandHandler(uowFactory DeliveryManUoWFactory) DeleteDeliveryManCommandHandler {
	return DeleteDeliveryManCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. The existence check runs first so a
// missing delivery man surfaces as an ObjectNotFoundError.
func (h DeleteDeliveryManCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryManCommand) error {
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

	if err = repo.Delete(ctx, dm.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
