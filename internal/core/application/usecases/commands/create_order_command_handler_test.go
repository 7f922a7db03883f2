package commands_test

import (
	"errors"
	"testing"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	rcp := buildRecipient(t)
	dm := buildDeliveryMan(t, "john.doe@fastfeet.com")
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), rcp.ID(), dm.ID(), "Standing desk")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	rcpRepo := new(MockRecipientRepository)
	dmRepo := new(MockDeliveryManRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(rcpRepo).Once(),
		rcpRepo.On("Get", mock.Anything, rcp.ID()).Return(rcp, nil).Once(),
		uow.On("DeliveryManRepository").Return(dmRepo).Once(),
		dmRepo.On("Get", mock.Anything, dm.ID()).Return(dm, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		queue.On("Enqueue", mock.Anything, enqueuedKind(notification.KindNewOrder)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, queue)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	queue.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	queue := new(MockNotificationQueue)
	h := commands.NewCreateOrderCommandHandler(factory, queue)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Standing desk")

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, new(MockNotificationQueue))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_RecipientNotFound(t *testing.T) {
	ctx := t.Context()
	recipientID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), recipientID, kernel.NewUUID(), "Standing desk")

	rcpRepo := new(MockRecipientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(rcpRepo).Once(),
		rcpRepo.On("Get", mock.Anything, recipientID).
			Return(nil, errs.NewObjectNotFoundError("recipient", recipientID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, new(MockNotificationQueue))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_EnqueueError(t *testing.T) {
	ctx := t.Context()
	rcp := buildRecipient(t)
	dm := buildDeliveryMan(t, "john.doe@fastfeet.com")
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), rcp.ID(), dm.ID(), "Standing desk")

	orderRepo := new(MockOrderRepository)
	rcpRepo := new(MockRecipientRepository)
	dmRepo := new(MockDeliveryManRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RecipientRepository").Return(rcpRepo).Once(),
		rcpRepo.On("Get", mock.Anything, rcp.ID()).Return(rcp, nil).Once(),
		uow.On("DeliveryManRepository").Return(dmRepo).Once(),
		dmRepo.On("Get", mock.Anything, dm.ID()).Return(dm, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		queue.On("Enqueue", mock.Anything, mock.AnythingOfType("notification.Notification")).
			Return(errs.NewConflictError("the notification queue is full")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, queue)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
