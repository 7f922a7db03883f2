package order

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// MaxDailyPickups is the maximum number of orders a delivery man may pick up
// on a single calendar day. The count is enforced by the pickup handler, which
// is the only place that can see all orders of a delivery man.
const MaxDailyPickups = 5

// Pickup operating window boundaries, applied to the time of day encoded in
// the requested start date. The upper bound deliberately includes the 59
// seconds of minute zero: the window is [08:00:00.000, 18:00:59.999].
const (
	pickupWindowOpenHour   = 8
	pickupWindowCloseHour  = 18
	pickupWindowCloseSec   = 59
	pickupWindowCloseNanos = 999 * int(time.Millisecond)
)

// WithinPickupWindow reports whether the time of day of t falls inside the
// operating window in t's own location. The calendar date of t is irrelevant
// beyond anchoring the window boundaries.
func WithinPickupWindow(t time.Time) bool {
	open := time.Date(t.Year(), t.Month(), t.Day(), pickupWindowOpenHour, 0, 0, 0, t.Location())
	closeAt := time.Date(t.Year(), t.Month(), t.Day(),
		pickupWindowCloseHour, 0, pickupWindowCloseSec, pickupWindowCloseNanos, t.Location())
	return !t.Before(open) && !t.After(closeAt)
}

// Order is the shipment aggregate tracked through the Pending, InTransit,
// Delivered and Canceled states. The state is not stored: it is derived from
// the three nullable timestamps (see Status), and the transition methods
// PickUp, Deliver and Cancel are the only mutators of those timestamps.
//
// Invariants:
//   - end date can only be set after the start date while not canceled
//   - canceled at can only be set while the end date is unset
//   - recipient, product and delivery man are immutable once picked up
//   - the version increases with every persisted mutation (optimistic locking)
type Order struct {
	id            kernel.UUID
	product       string
	recipientID   kernel.UUID
	deliveryManID kernel.UUID

	startDate   *time.Time
	endDate     *time.Time
	canceledAt  *time.Time
	signatureID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time
	version   int

	isConstructed bool
}

// NewOrder creates a new Order in the Pending state.
//
// Parameters:
//   - id: unique identifier for the order
//   - product: non-empty product description
//   - recipientID: the recipient the order ships to (must resolve in the datastore)
//   - deliveryManID: the delivery man assigned to the order
//   - createdAt: creation timestamp
//
// Reference existence is the caller's concern; the aggregate only validates
// shape (valid UUIDs, non-empty product).
func NewOrder(id, recipientID, deliveryManID kernel.UUID, product string, createdAt time.Time) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     createdAt,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProduct(product),
		o.setRecipientID(recipientID),
		o.setDeliveryManID(deliveryManID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its lifecycle
// timestamps, optional signature reference and optimistic lock version.
func RestoreOrder(
	id, recipientID, deliveryManID kernel.UUID,
	product string,
	startDate, endDate, canceledAt *time.Time,
	signatureID *kernel.UUID,
	createdAt, updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		startDate:     startDate,
		endDate:       endDate,
		canceledAt:    canceledAt,
		signatureID:   signatureID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProduct(product),
		o.setRecipientID(recipientID),
		o.setDeliveryManID(deliveryManID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Product returns the product description.
func (o *Order) Product() string {
	return o.product
}

// RecipientID returns the identifier of the recipient the order ships to.
func (o *Order) RecipientID() kernel.UUID {
	return o.recipientID
}

// DeliveryManID returns the identifier of the assigned delivery man.
func (o *Order) DeliveryManID() kernel.UUID {
	return o.deliveryManID
}

// StartDate returns the pickup timestamp, or nil if the order has not been picked up.
func (o *Order) StartDate() *time.Time {
	return o.startDate
}

// EndDate returns the delivery timestamp, or nil if the order has not been delivered.
func (o *Order) EndDate() *time.Time {
	return o.endDate
}

// CanceledAt returns the cancellation timestamp, or nil if the order is not canceled.
func (o *Order) CanceledAt() *time.Time {
	return o.canceledAt
}

// SignatureID returns the delivery signature file reference, or nil before delivery.
func (o *Order) SignatureID() *kernel.UUID {
	return o.signatureID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency token. The postgres repository
// rejects updates whose version does not match the stored row.
func (o *Order) Version() int {
	return o.version
}

// Status derives the lifecycle state from the three nullable timestamps.
func (o *Order) Status() Status {
	return StatusOf(o.startDate, o.endDate, o.canceledAt)
}

// EnsurePending verifies the order can still be reassigned, updated or deleted.
// The delivered check runs before the in-transit check, so a delivered order
// always reports "already delivered" rather than "already picked up".
func (o *Order) EnsurePending() error {
	if o.endDate != nil {
		return errs.NewConflictError("the order has already been delivered")
	}
	if o.startDate != nil {
		return errs.NewConflictError("the order has already been picked up by the delivery man")
	}
	return nil
}

// ChangeProduct replaces the product description. Allowed only while Pending.
func (o *Order) ChangeProduct(product string, now time.Time) error {
	if err := o.EnsurePending(); err != nil {
		return err
	}
	if err := o.setProduct(product); err != nil {
		return err
	}
	o.updatedAt = now
	return nil
}

// ChangeRecipient redirects the order to a different recipient. Allowed only while Pending.
func (o *Order) ChangeRecipient(recipientID kernel.UUID, now time.Time) error {
	if err := o.EnsurePending(); err != nil {
		return err
	}
	if err := o.setRecipientID(recipientID); err != nil {
		return err
	}
	o.updatedAt = now
	return nil
}

// Reassign hands the order over to a different delivery man. Allowed only
// while Pending: once the current assignee picked the order up, it belongs
// to them until delivery or cancellation.
func (o *Order) Reassign(deliveryManID kernel.UUID, now time.Time) error {
	if err := o.EnsurePending(); err != nil {
		return err
	}
	if err := o.setDeliveryManID(deliveryManID); err != nil {
		return err
	}
	o.updatedAt = now
	return nil
}

// PickUp records the start date of the delivery, moving the order from
// Pending to InTransit. Checks run in order and short-circuit:
//
//  1. the order must not already have a start date
//  2. deliveryManID must be the assigned delivery man
//  3. startDate's time of day must fall within the operating window
//
// The daily pickup quota is checked by the command handler, which counts the
// delivery man's pickups for the day before calling PickUp.
func (o *Order) PickUp(startDate time.Time, deliveryManID kernel.UUID) error {
	if o.startDate != nil {
		return errs.NewConflictError("the order has already been picked up")
	}
	if !o.deliveryManID.IsEqual(deliveryManID) {
		return errs.NewForbiddenError("the order is not available for the provided delivery man")
	}
	if !WithinPickupWindow(startDate) {
		return errs.NewConflictError("you can only pick up your order from 8 a.m. to 6 p.m.")
	}

	o.startDate = &startDate
	o.updatedAt = startDate
	return nil
}

// EnsureDeliverableBy reports whether the given delivery man can currently
// complete the order. State conflicts take precedence over the assignee check.
func (o *Order) EnsureDeliverableBy(deliveryManID kernel.UUID) error {
	if o.endDate != nil {
		return errs.NewConflictError("the order has already been delivered")
	}
	if o.canceledAt != nil {
		return errs.NewConflictError("the order has already been canceled")
	}
	if o.startDate == nil {
		return errs.NewConflictError("the order has not yet been picked up by the delivery man")
	}
	if !o.deliveryManID.IsEqual(deliveryManID) {
		return errs.NewForbiddenError("the order is not available for the provided delivery man")
	}
	return nil
}

// Deliver records the end date and the signature reference, moving the order
// from InTransit to Delivered. Signature existence is the caller's concern.
func (o *Order) Deliver(endDate time.Time, deliveryManID, signatureID kernel.UUID) error {
	if err := o.EnsureDeliverableBy(deliveryManID); err != nil {
		return err
	}
	if err := signatureID.Validate(); err != nil {
		return err
	}

	o.endDate = &endDate
	o.signatureID = &signatureID
	o.updatedAt = endDate
	return nil
}

// Cancel records the cancellation timestamp. A delivered order cannot be
// canceled, and cancellation is not repeatable.
func (o *Order) Cancel(canceledAt time.Time) error {
	if o.endDate != nil {
		return errs.NewConflictError("the order cannot be canceled, it has already been delivered")
	}
	if o.canceledAt != nil {
		return errs.NewConflictError("the order has already been canceled")
	}

	o.canceledAt = &canceledAt
	o.updatedAt = canceledAt
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	o.product = product
	return nil
}

func (o *Order) setRecipientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.recipientID = id
	return nil
}

func (o *Order) setDeliveryManID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.deliveryManID = id
	return nil
}
