package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/ports"
)

// DeleteOrderCommandHandler handles administrative order removal.
//
// Only pending orders may be removed. The assigned delivery man is informed
// through an "order removed" notification.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.NotificationQueue
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory, queue ports.NotificationQueue) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the order removal command. The notification is enqueued
// before the delete runs inside the transaction, so a rejected enqueue keeps
// the order in place.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err = ord.EnsurePending(); err != nil {
		return err
	}

	dm, err := uow.DeliveryManRepository().Get(ctx, ord.DeliveryManID())
	if err != nil {
		return err
	}

	if err = h.queue.Enqueue(ctx, notification.OrderRemoved(ord, dm)); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, ord.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
