package repository

import (
	"context"

	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
)

type AlertRepository struct {
	db db.DBTX
}

func NewAlertRepository(dbtx db.DBTX) *AlertRepository {
	return &AlertRepository{db: dbtx}
}

func (r *AlertRepository) Create(ctx context.Context, a *inventory.Alert) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO alerts (id, record_id, product_id, location, stock, threshold, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID(), a.RecordID(), a.ProductID(), a.Location(), a.Stock(), a.Threshold(), a.Message(), a.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create alert", err)
	}
	return nil
}
