package commands

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrPickUpOrderCommandIsNotConstructed = errors.New(
		"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
	)
)

// PickUpOrderCommand represents a delivery man's request to pick an order up,
// moving it from Pending to InTransit at the supplied start date.
type PickUpOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	deliveryManID kernel.UUID
	startDate     time.Time

	guard guard.ConstructorGuard
}

// NewPickUpOrderCommand creates a command to pick an order up.
// The start date must be set; the operating window and the daily quota are
// business rules checked by the handler against the loaded order.
func NewPickUpOrderCommand(orderID, deliveryManID kernel.UUID, startDate time.Time) (PickUpOrderCommand, error) {
	cmd := PickUpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryManID(deliveryManID),
		cmd.setStartDate(startDate),
	); err != nil {
		return PickUpOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pick up.
func (c PickUpOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryManID returns the identifier of the requesting delivery man.
func (c PickUpOrderCommand) DeliveryManID() kernel.UUID {
	return c.deliveryManID
}

// StartDate returns the requested pickup timestamp.
func (c PickUpOrderCommand) StartDate() time.Time {
	return c.startDate
}

func (c *PickUpOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PickUpOrderCommand) setDeliveryManID(deliveryManID kernel.UUID) error {
	if err := deliveryManID.Validate(); err != nil {
		return err
	}
	c.deliveryManID = deliveryManID
	return nil
}

func (c *PickUpOrderCommand) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}
	c.startDate = startDate
	return nil
}
