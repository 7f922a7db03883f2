// Package mailer provides the delivery side of the notification pipeline.
// The default implementation writes each message to the structured log, which
// keeps local and test environments free of a mail transport; a real SMTP
// sender plugs in behind the same Notifier port.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"fastfeet/internal/core/domain/model/notification"
)

// LogNotifier implements ports.Notifier by logging rendered notifications.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that writes messages to the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "mailer"),
	}
}

// Send logs one message in place of handing it to a mail transport.
func (m *LogNotifier) Send(ctx context.Context, to notification.Address, template, subject string, context map[string]string) error {
	attrs := make([]any, 0, 2*len(context)+6)
	attrs = append(attrs,
		"to", fmt.Sprintf("%s <%s>", to.Name, to.Email),
		"template", template,
		"subject", subject,
	)
	for k, v := range context {
		attrs = append(attrs, k, v)
	}

	m.logger.InfoContext(ctx, "Mail sent", attrs...)
	return nil
}
