// Package notification defines the transactional mail notices emitted by
// order lifecycle transitions. Composing a notification is pure: the
// constructors turn already-loaded aggregates into a Kind, an addressee and
// a template context map, and the queue adapter performs the actual delivery
// later, decoupled from the request path.
package notification
