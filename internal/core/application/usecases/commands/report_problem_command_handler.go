package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/problem"
	"fastfeet/internal/pkg/errs"
)

// ReportProblemCommandHandler records a delivery problem against an order.
//
// A problem can only be reported once the order has been picked up. Reporting
// does not change the order's state and does not notify anyone; cancellation
// is a separate administrative decision.
type ReportProblemCommandHandler struct {
	uowFactory UoWFactory
}

// NewReportProblemCommandHandler creates a handler for problem reports.
func NewReportProblemCommandHandler(uowFactory UoWFactory) ReportProblemCommandHandler {
	return ReportProblemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the problem report command.
func (h ReportProblemCommandHandler) Handle(ctx context.Context, cmd ReportProblemCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if ord.StartDate() == nil {
		return errs.NewConflictError("a problem can only be reported for an order that has been picked up")
	}

	p, err := problem.NewDeliveryProblem(cmd.ProblemID(), ord.ID(), cmd.Description(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.DeliveryProblemRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
