package repository

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const promotionColumns = `id, product_id, discount::text, starts_at, ends_at, created_at`

type PromotionRepository struct {
	db db.DBTX
}

func NewPromotionRepository(dbtx db.DBTX) *PromotionRepository {
	return &PromotionRepository{db: dbtx}
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO promotions (id, product_id, discount, starts_at, ends_at, created_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)`,
		p.ID(), p.ProductID(), p.Discount().String(), p.StartsAt(), p.EndsAt(), p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create promotion", err)
	}
	return nil
}

// FindCovering returns promotions whose [starts_at, ends_at) window contains at.
func (r *PromotionRepository) FindCovering(ctx context.Context, productID uuid.UUID, at time.Time) ([]*promotion.Promotion, error) {
	return ListPromotionsCovering(ctx, r.db, productID, at)
}

// ListPromotionsCovering is shared with the read side.
func ListPromotionsCovering(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, at time.Time) ([]*promotion.Promotion, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT `+promotionColumns+` FROM promotions
		WHERE product_id = $1 AND starts_at <= $2 AND ends_at > $2
		ORDER BY created_at DESC, id DESC`, productID, at)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	promos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*promotion.Promotion, error) {
		return scanPromotion(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan promotions", err)
	}
	return promos, nil
}

func scanPromotion(row pgx.Row) (*promotion.Promotion, error) {
	var (
		id, productID               uuid.UUID
		discount                    string
		startsAt, endsAt, createdAt time.Time
	)
	if err := row.Scan(&id, &productID, &discount, &startsAt, &endsAt, &createdAt); err != nil {
		return nil, err
	}
	d, err := pgconv.DecimalFromText(discount)
	if err != nil {
		return nil, err
	}
	return promotion.ReconstructPromotion(id, productID, d, startsAt, endsAt, createdAt), nil
}
