package commands_test

import (
	"testing"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportProblemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	dmID := kernel.NewUUID()
	ord := buildInTransitOrder(t, kernel.NewUUID(), dmID)
	cmd, err := commands.NewReportProblemCommand(kernel.NewUUID(), ord.ID(), "recipient not at home")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	problemRepo := new(MockProblemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("DeliveryProblemRepository").Return(problemRepo).Once(),
		problemRepo.On("Add", mock.Anything, mock.AnythingOfType("*problem.DeliveryProblem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReportProblemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	problemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReportProblemCommandHandler_Handle_OrderNotPickedUp(t *testing.T) {
	ctx := t.Context()
	ord := buildPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewReportProblemCommand(kernel.NewUUID(), ord.ID(), "recipient not at home")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	problemRepo := new(MockProblemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReportProblemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Contains(t, err.Error(), "picked up")
	problemRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReportProblemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewReportProblemCommand(kernel.NewUUID(), orderID, "recipient not at home")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReportProblemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
