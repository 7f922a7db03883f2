package notification

import (
	"strconv"
	"time"

	"fastfeet/internal/core/domain/model/deliveryman"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"
)

// Kind names the queue a notification is routed through and the mail template
// it renders with. Each lifecycle transition emits at most one kind per addressee.
type Kind string

const (
	// KindNewOrder tells a delivery man a new order is available for pickup.
	KindNewOrder Kind = "new-order"

	// KindOrderUpdated tells the current delivery man the order's details changed.
	KindOrderUpdated Kind = "order-updated"

	// KindOrderRedistributed tells the previous delivery man the order was
	// handed over to someone else. On reassignment this is always enqueued
	// before the KindNewOrder notice to the new assignee.
	KindOrderRedistributed Kind = "order-redistributed"

	// KindOrderRemoved tells the delivery man a pending order was deleted.
	KindOrderRemoved Kind = "order-removed"

	// KindOrderCanceled tells the delivery man the order was canceled through
	// a delivery problem.
	KindOrderCanceled Kind = "order-canceled"
)

// Kinds lists every notification kind. The queue engine provisions one named
// queue per entry.
func Kinds() []Kind {
	return []Kind{
		KindNewOrder,
		KindOrderUpdated,
		KindOrderRedistributed,
		KindOrderRemoved,
		KindOrderCanceled,
	}
}

// Validate checks the kind is one of the declared values.
func (k Kind) Validate() error {
	switch k {
	case KindNewOrder, KindOrderUpdated, KindOrderRedistributed, KindOrderRemoved, KindOrderCanceled:
		return nil
	default:
		return errs.NewValueIsInvalidError("notification kind")
	}
}

// Template returns the mail template identifier handed to the notifier.
func (k Kind) Template() string {
	switch k {
	case KindNewOrder:
		return "sendOrder"
	case KindOrderUpdated:
		return "updateOrder"
	case KindOrderRedistributed:
		return "redistributeOrder"
	case KindOrderRemoved:
		return "removeOrder"
	case KindOrderCanceled:
		return "cancelOrder"
	default:
		return ""
	}
}

// Subject returns the mail subject line for the kind.
func (k Kind) Subject() string {
	switch k {
	case KindNewOrder:
		return "New order available for pick up - FastFeet"
	case KindOrderUpdated:
		return "Order updated - FastFeet"
	case KindOrderRedistributed:
		return "Order redistributed - FastFeet"
	case KindOrderRemoved:
		return "Order removed - FastFeet"
	case KindOrderCanceled:
		return "Order canceled - FastFeet"
	default:
		return ""
	}
}

// Address identifies the delivery man a notification is sent to.
type Address struct {
	Name  string
	Email string
}

// timestampLayout is how timestamps are rendered inside mail templates.
const timestampLayout = "2006-01-02 15:04"

// Notification is a unit of deferred work: a mail to one delivery man about
// one lifecycle transition. It is a pure value — composing one performs no
// I/O, which keeps the transition handlers testable without a queue.
type Notification struct {
	kind    Kind
	orderID kernel.UUID
	to      Address
	context map[string]string
}

// Kind returns the notification's kind.
func (n Notification) Kind() Kind {
	return n.kind
}

// OrderID returns the order the notification is about.
func (n Notification) OrderID() kernel.UUID {
	return n.orderID
}

// To returns the addressee.
func (n Notification) To() Address {
	return n.to
}

// Context returns the template context map. The map is shared, not copied;
// callers must treat it as read-only.
func (n Notification) Context() map[string]string {
	return n.context
}

// Validate checks the notification carries a valid kind, order reference and addressee.
func (n Notification) Validate() error {
	if err := n.kind.Validate(); err != nil {
		return err
	}
	if err := n.orderID.Validate(); err != nil {
		return err
	}
	if n.to.Email == "" {
		return errs.NewValueIsRequiredError("notification addressee")
	}
	return nil
}

func address(dm *deliveryman.DeliveryMan) Address {
	return Address{Name: dm.Name(), Email: dm.Email()}
}

func addressContext(rcp *recipient.Recipient) map[string]string {
	return map[string]string{
		"address_street":      rcp.Street(),
		"address_number":      strconv.Itoa(rcp.Number()),
		"address_postal_code": rcp.PostalCode(),
		"address_city":        rcp.City(),
		"address_state":       rcp.State(),
	}
}

// NewOrderAvailable composes the "new order available for pickup" notice for the
// delivery man currently assigned to the order.
func NewOrderAvailable(o *order.Order, dm *deliveryman.DeliveryMan, rcp *recipient.Recipient) Notification {
	ctx := addressContext(rcp)
	ctx["id"] = o.ID().String()
	ctx["delivery_man_name"] = dm.Name()
	ctx["product"] = o.Product()
	ctx["created_at"] = o.CreatedAt().Format(timestampLayout)

	return Notification{
		kind:    KindNewOrder,
		orderID: o.ID(),
		to:      address(dm),
		context: ctx,
	}
}

// OrderUpdated composes the "order updated" notice for the current delivery man.
func OrderUpdated(o *order.Order, dm *deliveryman.DeliveryMan, rcp *recipient.Recipient) Notification {
	ctx := addressContext(rcp)
	ctx["id"] = o.ID().String()
	ctx["delivery_man_name"] = dm.Name()
	ctx["product"] = o.Product()
	ctx["created_at"] = o.CreatedAt().Format(timestampLayout)
	ctx["updated_at"] = o.UpdatedAt().Format(timestampLayout)

	return Notification{
		kind:    KindOrderUpdated,
		orderID: o.ID(),
		to:      address(dm),
		context: ctx,
	}
}

// OrderRedistributed composes the notice to the previous delivery man after a
// reassignment took the order away from them.
func OrderRedistributed(o *order.Order, previous *deliveryman.DeliveryMan) Notification {
	return Notification{
		kind:    KindOrderRedistributed,
		orderID: o.ID(),
		to:      address(previous),
		context: map[string]string{
			"id":                o.ID().String(),
			"delivery_man_name": previous.Name(),
			"created_at":        o.CreatedAt().Format(timestampLayout),
			"updated_at":        o.UpdatedAt().Format(timestampLayout),
		},
	}
}

// OrderRemoved composes the notice to the assigned delivery man that a pending
// order was deleted.
func OrderRemoved(o *order.Order, dm *deliveryman.DeliveryMan) Notification {
	return Notification{
		kind:    KindOrderRemoved,
		orderID: o.ID(),
		to:      address(dm),
		context: map[string]string{
			"id":                o.ID().String(),
			"delivery_man_name": dm.Name(),
			"created_at":        o.CreatedAt().Format(timestampLayout),
		},
	}
}

// OrderCanceled composes the notice to the assigned delivery man that the
// order was canceled via a delivery problem.
func OrderCanceled(o *order.Order, dm *deliveryman.DeliveryMan, problemDescription string, canceledAt time.Time) Notification {
	return Notification{
		kind:    KindOrderCanceled,
		orderID: o.ID(),
		to:      address(dm),
		context: map[string]string{
			"id":                           o.ID().String(),
			"delivery_man_name":            dm.Name(),
			"delivery_problem_description": problemDescription,
			"created_at":                   o.CreatedAt().Format(timestampLayout),
			"canceled_at":                  canceledAt.Format(timestampLayout),
		},
	}
}
