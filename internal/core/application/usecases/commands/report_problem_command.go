package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrReportProblemCommandIsNotConstructed = errors.New(
		"ReportProblemCommand must be created via NewReportProblemCommand constructor",
	)
)

// ReportProblemCommand represents a delivery man's report of an incident
// during delivery of an order.
type ReportProblemCommand struct { //nolint:recvcheck //using for validation
	problemID   kernel.UUID
	orderID     kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewReportProblemCommand creates a command to report a delivery problem.
func NewReportProblemCommand(problemID, orderID kernel.UUID, description string) (ReportProblemCommand, error) {
	cmd := ReportProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProblemID(problemID),
		cmd.setOrderID(orderID),
		cmd.setDescription(description),
	); err != nil {
		return ReportProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportProblemCommand) Validate() error {
	return c.guard.Validate(ErrReportProblemCommandIsNotConstructed)
}

// ProblemID returns the identifier assigned to the new problem record.
func (c ReportProblemCommand) ProblemID() kernel.UUID {
	return c.problemID
}

// OrderID returns the identifier of the order the problem concerns.
func (c ReportProblemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Description returns the free-text incident description.
func (c ReportProblemCommand) Description() string {
	return c.description
}

func (c *ReportProblemCommand) setProblemID(problemID kernel.UUID) error {
	if err := problemID.Validate(); err != nil {
		return err
	}
	c.problemID = problemID
	return nil
}

func (c *ReportProblemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReportProblemCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}
