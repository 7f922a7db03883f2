// Package problem contains the DeliveryProblem aggregate: a free-text incident
// attached to an order that has at least been picked up. Problem records are a
// permanent audit log — the "delete" operation on a problem cancels the
// underlying order and leaves the record in place.
package problem

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var (
	// ErrProblemIsNotConstructed is returned when a DeliveryProblem instance was not
	// created through the NewDeliveryProblem or RestoreDeliveryProblem factory methods.
	ErrProblemIsNotConstructed = errors.New(
		"DeliveryProblem must be created via NewDeliveryProblem or RestoreDeliveryProblem constructor",
	)
)

// DeliveryProblem records an incident reported against an in-transit order.
type DeliveryProblem struct {
	id          kernel.UUID
	orderID     kernel.UUID
	description string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDeliveryProblem creates a new problem record for an order.
// The order's state gate (must be at least in transit) is the caller's concern.
func NewDeliveryProblem(id, orderID kernel.UUID, description string, createdAt time.Time) (*DeliveryProblem, error) {
	p := &DeliveryProblem{
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setDescription(description),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryProblem reconstructs a DeliveryProblem from persistence.
func RestoreDeliveryProblem(id, orderID kernel.UUID, description string, createdAt, updatedAt time.Time) (*DeliveryProblem, error) {
	p, err := NewDeliveryProblem(id, orderID, description, createdAt)
	if err != nil {
		return nil, err
	}
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the DeliveryProblem was created through a factory method.
func (p *DeliveryProblem) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProblemIsNotConstructed
	}
	return nil
}

// ID returns the problem's unique identifier.
func (p *DeliveryProblem) ID() kernel.UUID { return p.id }

// OrderID returns the identifier of the order the problem was reported against.
func (p *DeliveryProblem) OrderID() kernel.UUID { return p.orderID }

// Description returns the free-text incident description.
func (p *DeliveryProblem) Description() string { return p.description }

// CreatedAt returns the creation timestamp.
func (p *DeliveryProblem) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (p *DeliveryProblem) UpdatedAt() time.Time { return p.updatedAt }

func (p *DeliveryProblem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryProblem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *DeliveryProblem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}
