package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order for delivery.
// Both references must resolve in the datastore; the handler checks that.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	product       string
	recipientID   kernel.UUID
	deliveryManID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that all identifiers are valid and the product is not empty.
func NewCreateOrderCommand(orderID, recipientID, deliveryManID kernel.UUID, product string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProduct(product),
		cmd.setRecipientID(recipientID),
		cmd.setDeliveryManID(deliveryManID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Product returns the product description.
func (c CreateOrderCommand) Product() string {
	return c.product
}

// RecipientID returns the recipient reference.
func (c CreateOrderCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// DeliveryManID returns the delivery man reference.
func (c CreateOrderCommand) DeliveryManID() kernel.UUID {
	return c.deliveryManID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	c.product = product
	return nil
}

func (c *CreateOrderCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}

func (c *CreateOrderCommand) setDeliveryManID(deliveryManID kernel.UUID) error {
	if err := deliveryManID.Validate(); err != nil {
		return err
	}
	c.deliveryManID = deliveryManID
	return nil
}
