package queries

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrGetProblemsQueryIsNotConstructed = errors.New(
		"GetProblemsQuery must be created via NewGetProblemsQuery constructor",
	)
)

// GetProblemsQuery retrieves delivery problem records, either across all
// orders or scoped to a single one.
type GetProblemsQuery struct { //nolint:recvcheck //using for validation
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProblemsQuery creates a query for all reported problems.
func NewGetProblemsQuery() GetProblemsQuery {
	return GetProblemsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrderProblemsQuery creates a query for the problems of one order.
func NewGetOrderProblemsQuery(orderID kernel.UUID) (GetProblemsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetProblemsQuery{}, err
	}

	return GetProblemsQuery{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetProblemsQuery) Validate() error {
	return q.guard.Validate(ErrGetProblemsQueryIsNotConstructed)
}

// OrderID returns the order scope, or nil when all problems are requested.
func (q GetProblemsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// GetProblemsQueryResponse represents one problem record of the listing.
type GetProblemsQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Description string
	CreatedAt   time.Time
}
