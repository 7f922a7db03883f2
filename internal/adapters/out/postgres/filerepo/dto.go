// Package filerepo provides data transfer objects and mapping functions for
// file metadata persistence. Only metadata is stored here; file bytes live on disk.
package filerepo

import (
	"time"

	"fastfeet/internal/core/domain/model/file"
	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FileDTO represents the database structure for persisting file metadata.
type FileDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Path      string    `gorm:"type:varchar(255);not null"`
	URL       string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time
}

// TableName specifies the database table name for file entities.
// Overrides GORM's default naming convention to use "files".
func (FileDTO) TableName() string {
	return "files"
}

// fromDomain converts a file entity to its database representation.
func fromDomain(aggregate *file.File) FileDTO {
	return FileDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Path:      aggregate.Path(),
		URL:       aggregate.URL(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a file entity.
func toDomain(dto FileDTO) (*file.File, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return file.RestoreFile(id, dto.Name, dto.Path, dto.URL, dto.CreatedAt)
}
