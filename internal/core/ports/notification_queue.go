package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/notification"
)

// NotificationQueue is the dispatch side of the background job queue. Enqueue
// returns once the notification is accepted into its named queue; delivery
// happens asynchronously with at-least-once semantics, so the request path
// never waits for the mail transport.
type NotificationQueue interface {
	Enqueue(ctx context.Context, n notification.Notification) error
}

// Notifier delivers one formatted message. It is an external collaborator:
// the queue workers call it with the addressee, the template identifier, the
// subject line and the template context. A failed or timed-out send is logged
// and retried by the queue, never surfaced to the original caller.
type Notifier interface {
	Send(ctx context.Context, to notification.Address, template, subject string, context map[string]string) error
}
