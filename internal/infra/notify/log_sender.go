package notify

import (
	"context"
	"log/slog"
)

// LogSender writes every notification to the application log.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Notify(ctx context.Context, recipient, subject, body string) error {
	s.logger.InfoContext(ctx, "notification sent",
		"recipient", recipient,
		"subject", subject,
		"body", body)
	return nil
}
