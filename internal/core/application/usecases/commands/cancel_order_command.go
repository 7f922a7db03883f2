package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents an administrator's decision to cancel the
// order a reported problem refers to. The command addresses the problem
// record, not the order itself.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	problemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order by problem reference.
func NewCancelOrderCommand(problemID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProblemID(problemID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// ProblemID returns the identifier of the problem justifying the cancellation.
func (c CancelOrderCommand) ProblemID() kernel.UUID {
	return c.problemID
}

func (c *CancelOrderCommand) setProblemID(problemID kernel.UUID) error {
	if err := problemID.Validate(); err != nil {
		return err
	}
	c.problemID = problemID
	return nil
}
