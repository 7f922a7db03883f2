package commands_test

import (
	"testing"
	"time"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	dm := buildDeliveryMan(t, "john.doe@fastfeet.com")
	ord := buildInTransitOrder(t, kernel.NewUUID(), dm.ID())
	p := buildProblem(t, ord.ID())
	cmd, err := commands.NewCancelOrderCommand(p.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	problemRepo := new(MockProblemRepository)
	dmRepo := new(MockDeliveryManRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("DeliveryManRepository").Return(dmRepo).Once(),
		dmRepo.On("Get", mock.Anything, dm.ID()).Return(dm, nil).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		queue.On("Enqueue", mock.Anything, enqueuedKind(notification.KindOrderCanceled)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, queue)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Canceled, ord.Status())
	queue.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	ctx := t.Context()
	dm := buildDeliveryMan(t, "john.doe@fastfeet.com")
	ord := buildInTransitOrder(t, kernel.NewUUID(), dm.ID())
	require.NoError(t, ord.Deliver(
		time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC), dm.ID(), kernel.NewUUID(),
	))
	p := buildProblem(t, ord.ID())
	cmd, err := commands.NewCancelOrderCommand(p.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	problemRepo := new(MockProblemRepository)
	dmRepo := new(MockDeliveryManRepository)
	queue := new(MockNotificationQueue)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("DeliveryManRepository").Return(dmRepo).Once(),
		dmRepo.On("Get", mock.Anything, dm.ID()).Return(dm, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, queue)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Contains(t, err.Error(), "already been delivered")
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	queue.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_ProblemNotFound(t *testing.T) {
	ctx := t.Context()
	problemID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(problemID)
	require.NoError(t, err)

	problemRepo := new(MockProblemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Get", mock.Anything, problemID).
			Return(nil, errs.NewObjectNotFoundError("delivery problem", problemID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockNotificationQueue))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
