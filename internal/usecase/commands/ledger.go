package commands

import (
	"context"

	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/pkg/clock"
	"fulfillment-engine/internal/pkg/config"
	"fulfillment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// Ledger is the only writer of stock levels. Order creation, returns and
// direct adjustments all go through Apply inside their own transaction.
type Ledger struct {
	clock          clock.Clock
	notifier       shared.Notifier
	adminRecipient string
}

func NewLedger(clk clock.Clock, notifier shared.Notifier, cfg config.Config) *Ledger {
	return &Ledger{
		clock:          clk,
		notifier:       notifier,
		adminRecipient: cfg.Notifier.AdminRecipient,
	}
}

type Adjustment struct {
	Record *inventory.Record
	Alert  *inventory.Alert
}

// Apply adjusts one record, logs the movement and, when the result is below
// threshold, appends an alert and queues the admin notification.
func (l *Ledger) Apply(ctx context.Context, tx shared.Tx, recordID uuid.UUID, delta int) (*Adjustment, error) {
	if err := inventory.ValidateDelta(delta); err != nil {
		return nil, err
	}
	now := l.clock.Now()

	rec, err := tx.Inventory().Adjust(ctx, recordID, delta, now)
	if err != nil {
		return nil, err
	}
	if err = tx.Inventory().AppendMovement(ctx, inventory.NewMovement(rec, delta, now)); err != nil {
		return nil, err
	}

	adj := &Adjustment{Record: rec}
	if !rec.BelowThreshold() {
		return adj, nil
	}

	alert := inventory.NewAlert(rec, now)
	if err = tx.Alerts().Create(ctx, alert); err != nil {
		return nil, err
	}
	shared.NotifyAfterCommit(tx, l.notifier, l.adminRecipient, inventory.AlertSubject, alert.Message())
	adj.Alert = alert
	return adj, nil
}

// ApplyToProduct adjusts the product's lowest-id record.
func (l *Ledger) ApplyToProduct(ctx context.Context, tx shared.Tx, productID uuid.UUID, delta int) (*Adjustment, error) {
	rec, err := tx.Inventory().FirstForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return l.Apply(ctx, tx, rec.ID(), delta)
}
