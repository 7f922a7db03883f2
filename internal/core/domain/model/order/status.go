package order

import (
	"fmt"
	"time"

	"fastfeet/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is derived from the
// three nullable timestamps of the aggregate and is never stored on its own:
//
//	Pending    — start_date, end_date and canceled_at are all unset
//	InTransit  — start_date set, end_date and canceled_at unset
//	Delivered  — start_date and end_date set, canceled_at unset
//	Canceled   — canceled_at set, end_date unset
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Canceled
//
// The transition methods on Order are the only mutators of the timestamps,
// so the derived status always follows these rules.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order was created but not yet
	// picked up by its delivery man. Reassignment is only allowed here.
	Pending

	// InTransit indicates the delivery man has picked the order up.
	InTransit

	// Delivered indicates the order was handed over and signed for.
	// This is a final state with no further transitions allowed.
	Delivered

	// Canceled indicates the order was canceled through a delivery problem.
	// This is a final state with no further transitions allowed.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InTransit, Delivered, Canceled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Canceled
}

// StatusOf derives the lifecycle state from the three nullable timestamps.
// Cancellation wins over delivery, which wins over pickup.
func StatusOf(startDate, endDate, canceledAt *time.Time) Status {
	switch {
	case canceledAt != nil:
		return Canceled
	case endDate != nil:
		return Delivered
	case startDate != nil:
		return InTransit
	default:
		return Pending
	}
}
