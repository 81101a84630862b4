package readstore

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/analytics"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AnalyticsReadStore struct {
	db db.DBTX
}

func NewAnalyticsReadStore(dbtx db.DBTX) *AnalyticsReadStore {
	return &AnalyticsReadStore{db: dbtx}
}

// Windows are half-open: created_at >= start AND created_at < end.

func (r *AnalyticsReadStore) RevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total string
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)::text FROM orders
		WHERE created_at >= $1 AND created_at < $2`, start, end,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum revenue", err)
	}
	d, err := pgconv.DecimalFromText(total)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("invalid revenue total", err)
	}
	return d, nil
}

func (r *AnalyticsReadStore) CurrentTotalStock(ctx context.Context) (int, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(stock), 0) FROM inventory_records`).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum stock", err)
	}
	return int(total), nil
}

func (r *AnalyticsReadStore) StockDeltaSince(ctx context.Context, t time.Time) (int, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(delta), 0) FROM stock_movements
		WHERE created_at >= $1`, t,
	).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum stock movements", err)
	}
	return int(total), nil
}

func (r *AnalyticsReadStore) QuantitiesByProduct(ctx context.Context, start, end time.Time) ([]analytics.ProductQuantity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT l.product_id, SUM(l.quantity)
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		WHERE o.created_at >= $1 AND o.created_at < $2
		GROUP BY l.product_id`, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate quantities", err)
	}
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (analytics.ProductQuantity, error) {
		var (
			pq  analytics.ProductQuantity
			qty int64
		)
		if err := row.Scan(&pq.ProductID, &qty); err != nil {
			return pq, err
		}
		pq.Quantity = int(qty)
		return pq, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan quantities", err)
	}
	return totals, nil
}

func (r *AnalyticsReadStore) QuantitySold(ctx context.Context, productID uuid.UUID, start, end time.Time) (int, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(l.quantity), 0)
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		WHERE l.product_id = $1 AND o.created_at >= $2 AND o.created_at < $3`, productID, start, end,
	).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum quantity sold", err)
	}
	return int(total), nil
}
