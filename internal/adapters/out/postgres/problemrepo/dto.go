// Package problemrepo provides data transfer objects and mapping functions for
// delivery problem persistence.
package problemrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/problem"

	"github.com/google/uuid"
)

// DeliveryProblemDTO represents the database structure for persisting problem records.
type DeliveryProblemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for delivery problem entities.
// Overrides GORM's default naming convention to use "delivery_problems".
func (DeliveryProblemDTO) TableName() string {
	return "delivery_problems"
}

// fromDomain converts a delivery problem domain aggregate to its database representation.
func fromDomain(aggregate *problem.DeliveryProblem) DeliveryProblemDTO {
	return DeliveryProblemDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery problem domain aggregate.
func toDomain(dto DeliveryProblemDTO) (*problem.DeliveryProblem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return problem.RestoreDeliveryProblem(id, orderID, dto.Description, dto.CreatedAt, dto.UpdatedAt)
}
