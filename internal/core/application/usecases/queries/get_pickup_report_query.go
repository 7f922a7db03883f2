package queries

import (
	"errors"
	"time"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrGetPickupReportQueryIsNotConstructed = errors.New(
		"GetPickupReportQuery must be created via NewGetPickupReportQuery constructor",
	)
)

// GetPickupReportQuery requests the per-delivery-man pickup counts for one
// calendar day. Day boundaries follow the given moment's own location.
type GetPickupReportQuery struct { //nolint:recvcheck //using for validation
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetPickupReportQuery creates a pickup report query for the calendar day
// containing the given moment.
func NewGetPickupReportQuery(day time.Time) (GetPickupReportQuery, error) {
	if day.IsZero() {
		return GetPickupReportQuery{}, errs.NewValueIsRequiredError("day")
	}

	return GetPickupReportQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupReportQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupReportQueryIsNotConstructed)
}

// Day returns the moment whose calendar day is reported on.
func (q GetPickupReportQuery) Day() time.Time {
	return q.day
}
