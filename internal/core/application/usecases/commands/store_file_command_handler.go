package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/file"
)

// StoreFileCommandHandler registers the metadata of uploaded files so that
// avatars and delivery signatures can reference them.
type StoreFileCommandHandler struct {
	uowFactory FileUoWFactory
}

// NewStoreFileCommandHandler creates a handler for file metadata registration.
func NewStoreFileCommandHandler(uowFactory FileUoWFactory) StoreFileCommandHandler {
	return StoreFileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the file registration command.
func (h StoreFileCommandHandler) Handle(ctx context.Context, cmd StoreFileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	f, err := file.NewFile(cmd.FileID(), cmd.Name(), cmd.Path(), cmd.URL(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.FileRepository().Add(ctx, f); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
