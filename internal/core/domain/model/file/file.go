// Package file contains the File entity: stored binary content referenced by
// delivery men (avatar) and orders (delivery signature). Upload handling is
// outside the core; the entity only carries the stored metadata.
package file

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var (
	// ErrFileIsNotConstructed is returned when a File instance was not created
	// through the NewFile or RestoreFile factory methods.
	ErrFileIsNotConstructed = errors.New("File must be created via NewFile or RestoreFile constructor")
)

// File holds the metadata of a stored upload: its original name, the storage
// path and the public URL it is served from.
type File struct {
	id   kernel.UUID
	name string
	path string
	url  string

	createdAt time.Time

	isConstructed bool
}

// NewFile creates a new File entity.
func NewFile(id kernel.UUID, name, path, url string, createdAt time.Time) (*File, error) {
	f := &File{
		url:           url,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setPath(path),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreFile reconstructs a File from persistence.
func RestoreFile(id kernel.UUID, name, path, url string, createdAt time.Time) (*File, error) {
	return NewFile(id, name, path, url, createdAt)
}

// Validate ensures the File was created through a factory method.
func (f *File) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFileIsNotConstructed
	}
	return nil
}

// ID returns the file's unique identifier.
func (f *File) ID() kernel.UUID { return f.id }

// Name returns the original upload name.
func (f *File) Name() string { return f.name }

// Path returns the storage path.
func (f *File) Path() string { return f.path }

// URL returns the public URL the file is served from.
func (f *File) URL() string { return f.url }

// CreatedAt returns the creation timestamp.
func (f *File) CreatedAt() time.Time { return f.createdAt }

func (f *File) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *File) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	f.name = name
	return nil
}

func (f *File) setPath(path string) error {
	if path == "" {
		return errs.NewValueIsRequiredError("path")
	}
	f.path = path
	return nil
}
