// Package queries contains the read side of the CQRS split: handlers that
// bypass the aggregates and read projection rows straight from the database.
package queries

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order together with its recipient and
// delivery man details for the administrative listing.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %s -> %s (%s)\n", o.ID, o.Product, o.Recipient.Name, o.Status)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderRecipientResponse carries the recipient details shown in order listings.
type OrderRecipientResponse struct {
	Name       string
	Street     string
	Number     int
	City       string
	State      string
	PostalCode string
}

// OrderDeliveryManResponse carries the delivery man details shown in order listings.
type OrderDeliveryManResponse struct {
	Name  string
	Email string
}

// GetAllOrdersQueryResponse represents one order row of the listing.
// Status is derived from the three lifecycle timestamps, never stored.
type GetAllOrdersQueryResponse struct {
	ID           kernel.UUID
	Product      string
	Status       order.Status
	StartDate    *time.Time
	EndDate      *time.Time
	CanceledAt   *time.Time
	SignatureURL string
	CreatedAt    time.Time
	Recipient    OrderRecipientResponse
	DeliveryMan  OrderDeliveryManResponse
}
