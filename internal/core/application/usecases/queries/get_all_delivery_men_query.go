package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrGetAllDeliveryMenQueryIsNotConstructed = errors.New(
		"GetAllDeliveryMenQuery must be created via NewGetAllDeliveryMenQuery constructor",
	)
)

// GetAllDeliveryMenQuery retrieves registered delivery men, optionally
// filtered by a case-insensitive name fragment.
type GetAllDeliveryMenQuery struct {
	nameFilter string

	guard guard.ConstructorGuard
}

// NewGetAllDeliveryMenQuery creates a query to retrieve delivery men.
// An empty nameFilter returns everyone.
func NewGetAllDeliveryMenQuery(nameFilter string) GetAllDeliveryMenQuery {
	return GetAllDeliveryMenQuery{
		nameFilter: nameFilter,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliveryMenQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveryMenQueryIsNotConstructed)
}

// NameFilter returns the name fragment to match, or the empty string.
func (q GetAllDeliveryMenQuery) NameFilter() string {
	return q.nameFilter
}

// GetAllDeliveryMenQueryResponse represents one delivery man of the listing.
type GetAllDeliveryMenQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	AvatarURL string
}
