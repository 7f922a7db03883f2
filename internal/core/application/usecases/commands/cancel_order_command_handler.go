package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/ports"
)

// CancelOrderCommandHandler cancels the order a reported problem refers to.
//
// The problem record itself stays in place as an audit trail; only the order
// changes state. The assigned delivery man is informed through an
// "order canceled" notification carrying the problem description.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.NotificationQueue
}

// NewCancelOrderCommandHandler creates a handler for problem-driven cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, queue ports.NotificationQueue) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the cancellation command. The notification is enqueued
// before the transaction commits, so a rejected enqueue leaves the order
// uncanceled.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	p, err := uow.DeliveryProblemRepository().Get(ctx, cmd.ProblemID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, p.OrderID())
	if err != nil {
		return err
	}

	dm, err := uow.DeliveryManRepository().Get(ctx, ord.DeliveryManID())
	if err != nil {
		return err
	}

	canceledAt := time.Now().UTC()
	if err = ord.Cancel(canceledAt); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = h.queue.Enqueue(ctx, notification.OrderCanceled(ord, dm, p.Description(), canceledAt)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
