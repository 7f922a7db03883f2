// Package order contains the Order aggregate, the central aggregate of the
// FastFeet domain. An order references a recipient, a delivery man and,
// after delivery, a signature file; none of them are owned or cascaded.
//
// The lifecycle is a four-state machine derived from three nullable
// timestamps (see Status). Transition methods enforce the business rules:
// pickup requires the assigned delivery man and the operating window,
// delivery requires a prior pickup and a signature, cancellation excludes
// delivered orders, and reassignment is only possible while Pending.
package order
