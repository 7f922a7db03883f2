package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"
)

// PickUpOrderCommandHandler handles the Pending to InTransit transition.
//
// Validation runs in order and short-circuits: order existence, not already
// picked up, assignment to the requesting delivery man, the operating window
// of the requested start date, and finally the delivery man's daily pickup
// quota. Pickup is a physical event; no notification is enqueued.
type PickUpOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPickUpOrderCommandHandler creates a handler for pickup operations.
func NewPickUpOrderCommandHandler(uowFactory UoWFactory) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command. The read-validate-write sequence runs
// inside one unit of work, and the repository's optimistic version check
// rejects the slower of two concurrent pickups with a ConflictError.
func (h PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.PickUp(cmd.StartDate(), cmd.DeliveryManID()); err != nil {
		return err
	}

	pickups, err := orderRepo.CountPickupsOnDay(ctx, cmd.DeliveryManID(), cmd.StartDate())
	if err != nil {
		return err
	}
	if pickups >= order.MaxDailyPickups {
		return errs.NewConflictError("the delivery man has reached the maximum number of pickups per day")
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
