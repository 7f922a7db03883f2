package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
)

// RecipientRepository defines the persistence contract for recipient aggregates.
type RecipientRepository interface {
	// Add persists a new recipient aggregate to storage.
	Add(ctx context.Context, aggregate *recipient.Recipient) error

	// Update persists changes to an existing recipient aggregate.
	Update(ctx context.Context, aggregate *recipient.Recipient) error

	// Get retrieves a recipient aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error)

	// FindByIdentity looks a recipient up by the uniqueness triple
	// (name, postal code, street number). Returns an ObjectNotFoundError
	// when no recipient matches.
	FindByIdentity(ctx context.Context, name, postalCode string, number int) (*recipient.Recipient, error)
}
