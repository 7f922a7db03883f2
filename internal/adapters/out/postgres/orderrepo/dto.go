// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The three lifecycle timestamps are nullable; the order's status is derived
// from them and never stored. Version backs the optimistic concurrency check.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Product       string
	RecipientID   uuid.UUID `gorm:"type:uuid;index"`
	DeliveryManID uuid.UUID `gorm:"type:uuid;index"`
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
	SignatureID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Product:       aggregate.Product(),
		RecipientID:   aggregate.RecipientID().Bytes(),
		DeliveryManID: aggregate.DeliveryManID().Bytes(),
		StartDate:     aggregate.StartDate(),
		EndDate:       aggregate.EndDate(),
		CanceledAt:    aggregate.CanceledAt(),
		SignatureID:   kernel.NullableBytes(aggregate.SignatureID()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Version:       aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lifecycle timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	deliveryManID, err := kernel.UUIDFromBytes(dto.DeliveryManID[:])
	if err != nil {
		return nil, err
	}

	signatureID, err := kernel.UUIDFromNullableBytes(dto.SignatureID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, recipientID, deliveryManID,
		dto.Product,
		dto.StartDate, dto.EndDate, dto.CanceledAt,
		signatureID,
		dto.CreatedAt, dto.UpdatedAt,
		dto.Version,
	)
}
