package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrStoreFileCommandIsNotConstructed = errors.New(
		"StoreFileCommand must be created via NewStoreFileCommand constructor",
	)
)

// StoreFileCommand represents the registration of an uploaded file's
// metadata. The bytes are already on disk when the command runs.
type StoreFileCommand struct { //nolint:recvcheck //using for validation
	fileID kernel.UUID
	name   string
	path   string
	url    string

	guard guard.ConstructorGuard
}

// NewStoreFileCommand creates a command to register an uploaded file.
func NewStoreFileCommand(fileID kernel.UUID, name, path, url string) (StoreFileCommand, error) {
	cmd := StoreFileCommand{
		url:   url,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFileID(fileID),
		cmd.setName(name),
		cmd.setPath(path),
	); err != nil {
		return StoreFileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StoreFileCommand) Validate() error {
	return c.guard.Validate(ErrStoreFileCommandIsNotConstructed)
}

// FileID returns the identifier assigned to the stored file.
func (c StoreFileCommand) FileID() kernel.UUID {
	return c.fileID
}

// Name returns the original file name.
func (c StoreFileCommand) Name() string {
	return c.name
}

// Path returns the storage path of the file bytes.
func (c StoreFileCommand) Path() string {
	return c.path
}

// URL returns the public URL the file is served from.
func (c StoreFileCommand) URL() string {
	return c.url
}

func (c *StoreFileCommand) setFileID(fileID kernel.UUID) error {
	if err := fileID.Validate(); err != nil {
		return err
	}
	c.fileID = fileID
	return nil
}

func (c *StoreFileCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *StoreFileCommand) setPath(path string) error {
	if path == "" {
		return errs.NewValueIsRequiredError("path")
	}
	c.path = path
	return nil
}
