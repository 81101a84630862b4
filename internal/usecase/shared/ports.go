package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Notifier delivers a side-channel message. Delivery failures never affect the
// operation that triggered them.
type Notifier interface {
	Notify(ctx context.Context, recipient, subject, body string) error
}

// RefundProcessor pays money back for an order. It runs as the last step of
// the return transaction, so an error rolls the return back. A transaction
// may be retried: calls repeating an earlier key must not pay twice.
type RefundProcessor interface {
	Refund(ctx context.Context, key, orderID uuid.UUID, amount decimal.Decimal) error
}
