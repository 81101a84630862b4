package repository

import (
	"context"

	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
)

type InvoiceRepository struct {
	db db.DBTX
}

func NewInvoiceRepository(dbtx db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: dbtx}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *order.Invoice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO invoices (id, order_id, amount, generated_at)
		VALUES ($1, $2, $3::numeric, $4)`,
		inv.ID(), inv.OrderID(), inv.Amount().String(), inv.GeneratedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create invoice", err)
	}
	return nil
}
