package shared

import (
	"context"
	"log/slog"
)

// NotifyAfterCommit sends the message once tx commits. Failures are logged.
func NotifyAfterCommit(tx Tx, n Notifier, recipient, subject, body string) {
	tx.AfterCommit(func(ctx context.Context) {
		if err := n.Notify(ctx, recipient, subject, body); err != nil {
			slog.Warn("notification failed",
				"recipient", recipient,
				"subject", subject,
				"error", err.Error())
		}
	})
}
