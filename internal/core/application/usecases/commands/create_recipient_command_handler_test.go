package commands_test

import (
	"errors"
	"testing"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateRecipientCommand(t *testing.T) commands.CreateRecipientCommand {
	t.Helper()
	cmd, err := commands.NewCreateRecipientCommand(
		kernel.NewUUID(), "Jane Roe", "Baker Street",
		221, "Apt B", "London", "LDN", "NW1 6XE",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateRecipientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateRecipientCommand(t)

	repo := new(MockRecipientRepository)
	uow := new(MockRecipientUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(repo).Once(),
		repo.On("FindByIdentity", mock.Anything, "Jane Roe", "NW1 6XE", 221).
			Return(nil, errs.NewObjectNotFoundError("recipient", "Jane Roe")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*recipient.Recipient")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecipientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRecipientCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRecipientCommandHandler_Handle_AlreadyExists(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateRecipientCommand(t)
	existing := buildRecipient(t)

	repo := new(MockRecipientRepository)
	uow := new(MockRecipientUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(repo).Once(),
		repo.On("FindByIdentity", mock.Anything, "Jane Roe", "NW1 6XE", 221).
			Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecipientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRecipientCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Contains(t, err.Error(), "already exists")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateRecipientCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateRecipientCommand(t)

	repo := new(MockRecipientRepository)
	uow := new(MockRecipientUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(repo).Once(),
		repo.On("FindByIdentity", mock.Anything, "Jane Roe", "NW1 6XE", 221).
			Return(nil, errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecipientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRecipientCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.NotErrorIs(t, err, errs.ErrConflict)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateRecipientCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateRecipientCommand{} // not constructed properly
	h := commands.NewCreateRecipientCommandHandler(new(MockRecipientUoWFactory))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateRecipientCommandIsNotConstructed)
}
