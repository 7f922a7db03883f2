// Package deliverymanrepo provides data transfer objects and mapping functions for
// delivery man persistence. This package implements the repository pattern for the
// delivery man domain aggregate, handling the conversion between domain entities
// and database representations.
package deliverymanrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/deliveryman"
	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryManDTO represents the database structure for persisting delivery man aggregates.
// The email column carries a unique index backing the registration uniqueness rule.
type DeliveryManDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Email     string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	AvatarID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for delivery man entities.
// Overrides GORM's default naming convention to use "delivery_men".
func (DeliveryManDTO) TableName() string {
	return "delivery_men"
}

// fromDomain converts a delivery man domain aggregate to its database representation.
func fromDomain(aggregate *deliveryman.DeliveryMan) DeliveryManDTO {
	return DeliveryManDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		AvatarID:  kernel.NullableBytes(aggregate.AvatarID()),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery man domain aggregate.
func toDomain(dto DeliveryManDTO) (*deliveryman.DeliveryMan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	avatarID, err := kernel.UUIDFromNullableBytes(dto.AvatarID)
	if err != nil {
		return nil, err
	}

	return deliveryman.RestoreDeliveryMan(id, dto.Name, dto.Email, avatarID, dto.CreatedAt, dto.UpdatedAt)
}
