package queries

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrGetDeliveriesQueryIsNotConstructed = errors.New(
		"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
	)
)

// GetDeliveriesQuery retrieves the work list of one delivery man.
//
// By default it returns open deliveries: orders neither delivered nor
// canceled. With the delivered filter it returns the completed ones instead.
//
// Example:
//
//	query, err := NewGetDeliveriesQuery(deliveryManID, false)
//	if err != nil {
//	    return err
//	}
//
//	deliveries, err := handler.Handle(ctx, query)
type GetDeliveriesQuery struct { //nolint:recvcheck //using for validation
	deliveryManID kernel.UUID
	delivered     bool

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a query for one delivery man's deliveries.
// Set delivered to list completed deliveries instead of open ones.
func NewGetDeliveriesQuery(deliveryManID kernel.UUID, delivered bool) (GetDeliveriesQuery, error) {
	if err := deliveryManID.Validate(); err != nil {
		return GetDeliveriesQuery{}, err
	}

	return GetDeliveriesQuery{
		deliveryManID: deliveryManID,
		delivered:     delivered,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// DeliveryManID returns the delivery man whose work list is requested.
func (q GetDeliveriesQuery) DeliveryManID() kernel.UUID {
	return q.deliveryManID
}

// Delivered reports whether the query targets completed deliveries.
func (q GetDeliveriesQuery) Delivered() bool {
	return q.delivered
}

// GetDeliveriesQueryResponse represents one delivery row of the work list.
type GetDeliveriesQueryResponse struct {
	ID         kernel.UUID
	Product    string
	Status     order.Status
	StartDate  *time.Time
	EndDate    *time.Time
	CanceledAt *time.Time
	CreatedAt  time.Time
	Recipient  OrderRecipientResponse
}
