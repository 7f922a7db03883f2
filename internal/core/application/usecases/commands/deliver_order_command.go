package commands

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
)

// DeliverOrderCommand represents a delivery man's request to complete a
// delivery, recording the end date and the recipient's signature.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	deliveryManID kernel.UUID
	signatureID   kernel.UUID
	endDate       time.Time

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to complete a delivery.
func NewDeliverOrderCommand(orderID, deliveryManID, signatureID kernel.UUID, endDate time.Time) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryManID(deliveryManID),
		cmd.setSignatureID(signatureID),
		cmd.setEndDate(endDate),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryManID returns the identifier of the requesting delivery man.
func (c DeliverOrderCommand) DeliveryManID() kernel.UUID {
	return c.deliveryManID
}

// SignatureID returns the signature file reference collected at handover.
func (c DeliverOrderCommand) SignatureID() kernel.UUID {
	return c.signatureID
}

// EndDate returns the delivery timestamp.
func (c DeliverOrderCommand) EndDate() time.Time {
	return c.endDate
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setDeliveryManID(deliveryManID kernel.UUID) error {
	if err := deliveryManID.Validate(); err != nil {
		return err
	}
	c.deliveryManID = deliveryManID
	return nil
}

func (c *DeliverOrderCommand) setSignatureID(signatureID kernel.UUID) error {
	if err := signatureID.Validate(); err != nil {
		return err
	}
	c.signatureID = signatureID
	return nil
}

func (c *DeliverOrderCommand) setEndDate(endDate time.Time) error {
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("end date")
	}
	c.endDate = endDate
	return nil
}
