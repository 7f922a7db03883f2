package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrGetAllRecipientsQueryIsNotConstructed = errors.New(
		"GetAllRecipientsQuery must be created via NewGetAllRecipientsQuery constructor",
	)
)

// GetAllRecipientsQuery retrieves every registered recipient.
type GetAllRecipientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRecipientsQuery creates a query to retrieve all recipients.
// This is a parameterless query.
func NewGetAllRecipientsQuery() GetAllRecipientsQuery {
	return GetAllRecipientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRecipientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRecipientsQueryIsNotConstructed)
}

// GetAllRecipientsQueryResponse represents one recipient of the listing.
type GetAllRecipientsQueryResponse struct {
	ID                kernel.UUID
	Name              string
	Street            string
	Number            int
	AdditionalDetails string
	City              string
	State             string
	PostalCode        string
}
