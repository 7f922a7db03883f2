package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/deliveryman"
	"fastfeet/internal/core/domain/model/kernel"
)

// DeliveryManRepository defines the persistence contract for delivery man aggregates.
type DeliveryManRepository interface {
	// Add persists a new delivery man aggregate to storage.
	Add(ctx context.Context, aggregate *deliveryman.DeliveryMan) error

	// Update persists changes to an existing delivery man aggregate.
	Update(ctx context.Context, aggregate *deliveryman.DeliveryMan) error

	// Get retrieves a delivery man aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliveryman.DeliveryMan, error)

	// Delete removes a delivery man from storage. Deletion is unconditional:
	// there is no order reassignment safeguard.
	Delete(ctx context.Context, id kernel.UUID) error

	// FindByEmail looks a delivery man up by email. Returns an
	// ObjectNotFoundError when no delivery man uses the address.
	FindByEmail(ctx context.Context, email string) (*deliveryman.DeliveryMan, error)
}
