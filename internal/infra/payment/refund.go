package payment

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoggingRefundProcessor records refunds in the log. Settlement with a payment
// gateway happens outside this service. A key is paid out at most once per
// process.
type LoggingRefundProcessor struct {
	logger *slog.Logger
	issued sync.Map
}

func NewLoggingRefundProcessor(logger *slog.Logger) *LoggingRefundProcessor {
	return &LoggingRefundProcessor{logger: logger}
}

func (p *LoggingRefundProcessor) Refund(ctx context.Context, key, orderID uuid.UUID, amount decimal.Decimal) error {
	if _, dup := p.issued.LoadOrStore(key, struct{}{}); dup {
		p.logger.InfoContext(ctx, "refund already issued",
			"key", key.String(),
			"order_id", orderID.String())
		return nil
	}
	p.logger.InfoContext(ctx, "refund issued",
		"key", key.String(),
		"order_id", orderID.String(),
		"amount", amount.StringFixed(2))
	return nil
}
