package commands

import (
	"context"
)

// DeliverOrderCommandHandler handles the InTransit to Delivered transition.
//
// The signature file must already exist in storage; completion records the
// end date and the signature reference on the order. Delivery is a physical
// event; no notification is enqueued.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for delivery completion.
func NewDeliverOrderCommandHandler(uowFactory UoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command. Validation runs in order
// and short-circuits: order existence, the aggregate's state and assignee
// checks, then signature file existence.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	if err = ord.EnsureDeliverableBy(cmd.DeliveryManID()); err != nil {
		return err
	}

	signature, err := uow.FileRepository().Get(ctx, cmd.SignatureID())
	if err != nil {
		return err
	}

	if err = ord.Deliver(cmd.EndDate(), cmd.DeliveryManID(), signature.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
