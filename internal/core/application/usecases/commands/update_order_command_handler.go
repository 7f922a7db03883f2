package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/deliveryman"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/ports"
)

// UpdateOrderCommandHandler handles updates and reassignments of pending orders.
//
// The notification side effect depends on whether the delivery man changes:
//
//   - same (or absent) delivery man: one "order updated" notice to the
//     current assignee
//   - different delivery man: two notices, the "redistributed" notice to the
//     previous assignee strictly before the "new order available" notice to
//     the new one, so the previous assignee never learns about the handover
//     after the new one
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.NotificationQueue
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory, queue ports.NotificationQueue) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the order update command. The order must still be Pending:
// a delivered order reports "already delivered" and an in-transit order
// "already picked up", in that priority. References that actually change must
// resolve in the datastore.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	now := time.Now().UTC()

	rcp, err := h.resolveRecipient(ctx, uow, cmd, ord.RecipientID())
	if err != nil {
		return err
	}

	previousID := ord.DeliveryManID()
	dm, sameDeliveryMan, err := h.resolveDeliveryMan(ctx, uow, cmd, previousID)
	if err != nil {
		return err
	}

	if cmd.Product() != "" {
		if err = ord.ChangeProduct(cmd.Product(), now); err != nil {
			return err
		}
	}
	if cmd.RecipientID() != nil {
		if err = ord.ChangeRecipient(rcp.ID(), now); err != nil {
			return err
		}
	}
	if !sameDeliveryMan {
		if err = ord.Reassign(dm.ID(), now); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if sameDeliveryMan {
		if err = h.queue.Enqueue(ctx, notification.OrderUpdated(ord, dm, rcp)); err != nil {
			return err
		}
	} else {
		previous, prevErr := uow.DeliveryManRepository().Get(ctx, previousID)
		if prevErr != nil {
			return prevErr
		}

		// The previous assignee must be informed first.
		if err = h.queue.Enqueue(ctx, notification.OrderRedistributed(ord, previous)); err != nil {
			return err
		}
		if err = h.queue.Enqueue(ctx, notification.NewOrderAvailable(ord, dm, rcp)); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// resolveRecipient returns the recipient the notifications should describe:
// the current one, or the requested one when it differs and resolves.
func (h UpdateOrderCommandHandler) resolveRecipient(
	ctx context.Context,
	uow UoW,
	cmd UpdateOrderCommand,
	currentID kernel.UUID,
) (*recipient.Recipient, error) {
	requested := cmd.RecipientID()
	if requested != nil && !requested.IsEqual(currentID) {
		return uow.RecipientRepository().Get(ctx, *requested)
	}
	return uow.RecipientRepository().Get(ctx, currentID)
}

// resolveDeliveryMan returns the delivery man the order ends up assigned to
// and whether the assignment is unchanged.
func (h UpdateOrderCommandHandler) resolveDeliveryMan(
	ctx context.Context,
	uow UoW,
	cmd UpdateOrderCommand,
	currentID kernel.UUID,
) (*deliveryman.DeliveryMan, bool, error) {
	requested := cmd.DeliveryManID()
	if requested != nil && !requested.IsEqual(currentID) {
		dm, err := uow.DeliveryManRepository().Get(ctx, *requested)
		if err != nil {
			return nil, false, err
		}
		return dm, false, nil
	}

	dm, err := uow.DeliveryManRepository().Get(ctx, currentID)
	if err != nil {
		return nil, false, err
	}
	return dm, true, nil
}
