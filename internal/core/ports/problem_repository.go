package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/problem"
)

// DeliveryProblemRepository defines the persistence contract for delivery problem records.
// Problems are append-only: cancellation through a problem mutates the order, never the record.
type DeliveryProblemRepository interface {
	// Add persists a new problem record to storage.
	Add(ctx context.Context, aggregate *problem.DeliveryProblem) error

	// Get retrieves a problem record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*problem.DeliveryProblem, error)
}
