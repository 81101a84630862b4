package readstore

import (
	"context"
	"time"

	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/infra/repository"
	"fulfillment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PricingReadStore struct {
	db db.DBTX
}

func NewPricingReadStore(dbtx db.DBTX) *PricingReadStore {
	return &PricingReadStore{db: dbtx}
}

func (r *PricingReadStore) FindProductByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	p, err := repository.NewProductRepository(r.db).FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.NewProductView(p), nil
}

func (r *PricingReadStore) ListProducts(ctx context.Context, after *queries.Keyset, limit int) ([]*queries.ProductView, error) {
	var afterAt, afterID any
	if after != nil {
		afterAt, afterID = after.CreatedAt, after.ID
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+repository.ProductColumns+` FROM products
		WHERE ($1::timestamptz IS NULL OR (created_at, id) < ($1, $2::uuid))
		ORDER BY created_at DESC, id DESC
		LIMIT $3`, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ProductView, error) {
		p, err := repository.ScanProduct(row)
		if err != nil {
			return nil, err
		}
		return queries.NewProductView(p), nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan products", err)
	}
	return views, nil
}

func (r *PricingReadStore) ListPromotionsCovering(ctx context.Context, productID uuid.UUID, at time.Time) ([]*queries.PromotionView, error) {
	promos, err := repository.ListPromotionsCovering(ctx, r.db, productID, at)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.PromotionView, 0, len(promos))
	for _, p := range promos {
		views = append(views, queries.NewPromotionView(p))
	}
	return views, nil
}
