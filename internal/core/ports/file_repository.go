package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/file"
	"fastfeet/internal/core/domain/model/kernel"
)

// FileRepository defines the persistence contract for stored file metadata.
// The lifecycle engine only resolves references (delivery signatures,
// avatars); the bytes themselves live on disk.
type FileRepository interface {
	// Add persists the metadata of an uploaded file.
	Add(ctx context.Context, aggregate *file.File) error

	// Get retrieves a file entity by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*file.File, error)
}
