package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to update or reassign a pending
// order. The three updatable fields form an at-least-one group: product,
// recipient and delivery man are each optional, but supplying none of them
// is a validation error.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	product       string
	recipientID   *kernel.UUID
	deliveryManID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update a pending order.
// An empty product and nil references mean "leave unchanged"; at least one
// of the three must be supplied.
func NewUpdateOrderCommand(orderID kernel.UUID, product string, recipientID, deliveryManID *kernel.UUID) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		product: product,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRecipientID(recipientID),
		cmd.setDeliveryManID(deliveryManID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if product == "" && recipientID == nil && deliveryManID == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError(
			"at least one of product, recipient or delivery man",
		)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Product returns the new product description, empty if unchanged.
func (c UpdateOrderCommand) Product() string {
	return c.product
}

// RecipientID returns the new recipient reference, nil if unchanged.
func (c UpdateOrderCommand) RecipientID() *kernel.UUID {
	return c.recipientID
}

// DeliveryManID returns the new delivery man reference, nil if unchanged.
func (c UpdateOrderCommand) DeliveryManID() *kernel.UUID {
	return c.deliveryManID
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setRecipientID(recipientID *kernel.UUID) error {
	if recipientID == nil {
		return nil
	}
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}

func (c *UpdateOrderCommand) setDeliveryManID(deliveryManID *kernel.UUID) error {
	if deliveryManID == nil {
		return nil
	}
	if err := deliveryManID.Validate(); err != nil {
		return err
	}
	c.deliveryManID = deliveryManID
	return nil
}
