package ports

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Implementations
	// must apply the aggregate's version as an optimistic concurrency token:
	// a stale version yields a ConflictError so two concurrent transitions on
	// the same order cannot both succeed.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order from storage. Only pending orders are ever
	// deleted; the handler checks the state before calling.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountPickupsOnDay counts the orders of one delivery man whose start date
	// falls on the given calendar day (inclusive start and end of day). Used
	// to enforce the daily pickup quota.
	CountPickupsOnDay(ctx context.Context, deliveryManID kernel.UUID, day time.Time) (int, error)
}
