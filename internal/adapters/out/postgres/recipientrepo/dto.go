// Package recipientrepo provides data transfer objects and mapping functions for
// recipient persistence. This package implements the repository pattern for the
// recipient domain aggregate, handling the conversion between domain entities
// and database representations.
package recipientrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

// RecipientDTO represents the database structure for persisting recipient aggregates.
// A composite unique index on (name, postal_code, number) backs the identity rule.
type RecipientDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_recipient_identity"`
	Street            string    `gorm:"type:varchar(255);not null"`
	Number            int       `gorm:"not null;uniqueIndex:idx_recipient_identity"`
	AdditionalDetails string    `gorm:"type:varchar(255)"`
	City              string    `gorm:"type:varchar(255);not null"`
	State             string    `gorm:"type:varchar(255);not null"`
	PostalCode        string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_recipient_identity"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for recipient entities.
// Overrides GORM's default naming convention to use "recipients".
func (RecipientDTO) TableName() string {
	return "recipients"
}

// fromDomain converts a recipient domain aggregate to its database representation.
func fromDomain(aggregate *recipient.Recipient) RecipientDTO {
	return RecipientDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Street:            aggregate.Street(),
		Number:            aggregate.Number(),
		AdditionalDetails: aggregate.AdditionalDetails(),
		City:              aggregate.City(),
		State:             aggregate.State(),
		PostalCode:        aggregate.PostalCode(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a recipient domain aggregate.
func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return recipient.RestoreRecipient(
		id,
		dto.Name, dto.Street,
		dto.Number,
		dto.AdditionalDetails, dto.City, dto.State, dto.PostalCode,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
