package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// A created order starts in the Pending state, and exactly one "new order
// available" notification is enqueued to the assigned delivery man.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.NotificationQueue
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, queue ports.NotificationQueue) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the order creation command. Both references must resolve,
// otherwise an ObjectNotFoundError is returned and nothing is persisted or
// enqueued. The notification is enqueued before the transaction commits, so a
// rejected enqueue leaves no order behind.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	rcp, err := uow.RecipientRepository().Get(ctx, cmd.RecipientID())
	if err != nil {
		return err
	}

	dm, err := uow.DeliveryManRepository().Get(ctx, cmd.DeliveryManID())
	if err != nil {
		return err
	}

	ord, err := order.NewOrder(cmd.OrderID(), rcp.ID(), dm.ID(), cmd.Product(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return err
	}

	if err = h.queue.Enqueue(ctx, notification.NewOrderAvailable(ord, dm, rcp)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
