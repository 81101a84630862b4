package queries

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingReadStore interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	// ListProducts returns up to limit products newest first.
	ListProducts(ctx context.Context, after *Keyset, limit int) ([]*ProductView, error)
	// ListPromotionsCovering returns the product's promotions whose window
	// contains at.
	ListPromotionsCovering(ctx context.Context, productID uuid.UUID, at time.Time) ([]*PromotionView, error)
}

type PriceView struct {
	ProductID      uuid.UUID       `json:"product_id"`
	BasePrice      decimal.Decimal `json:"base_price"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
	Promotion      *PromotionView  `json:"promotion,omitempty"`
	At             time.Time       `json:"at"`
}

type PricingQueries interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListProducts(ctx context.Context, cursor *Cursor, limit int) ([]*ProductView, *Cursor, error)
	// ActivePromotion returns nil without error when no promotion covers at.
	ActivePromotion(ctx context.Context, productID uuid.UUID, at *time.Time) (*PromotionView, error)
	EffectivePrice(ctx context.Context, productID uuid.UUID, at *time.Time) (*PriceView, error)
}

type pricingQueriesImpl struct {
	store PricingReadStore
	clock clock.Clock
}

func NewPricingQueries(store PricingReadStore, clk clock.Clock) PricingQueries {
	return &pricingQueriesImpl{store: store, clock: clk}
}

func (q *pricingQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	return q.store.FindProductByID(ctx, id)
}

func (q *pricingQueriesImpl) ListProducts(ctx context.Context, cursor *Cursor, limit int) ([]*ProductView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFromCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListProducts(ctx, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(p *ProductView) (time.Time, uuid.UUID) {
		return p.CreatedAt, p.ID
	})
	return page, next, nil
}

func (q *pricingQueriesImpl) ActivePromotion(ctx context.Context, productID uuid.UUID, at *time.Time) (*PromotionView, error) {
	if _, err := q.store.FindProductByID(ctx, productID); err != nil {
		return nil, err
	}
	return q.active(ctx, productID, q.resolveAt(at))
}

func (q *pricingQueriesImpl) EffectivePrice(ctx context.Context, productID uuid.UUID, at *time.Time) (*PriceView, error) {
	p, err := q.store.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	t := q.resolveAt(at)
	active, err := q.active(ctx, productID, t)
	if err != nil {
		return nil, err
	}

	view := &PriceView{
		ProductID:      productID,
		BasePrice:      p.BasePrice,
		EffectivePrice: promotion.EffectivePrice(p.BasePrice, nil),
		Promotion:      active,
		At:             t,
	}
	if active != nil {
		view.EffectivePrice = promotion.EffectivePrice(p.BasePrice, active.toDomain())
	}
	return view, nil
}

func (q *pricingQueriesImpl) active(ctx context.Context, productID uuid.UUID, at time.Time) (*PromotionView, error) {
	rows, err := q.store.ListPromotionsCovering(ctx, productID, at)
	if err != nil {
		return nil, err
	}
	candidates := make([]*promotion.Promotion, 0, len(rows))
	for _, r := range rows {
		candidates = append(candidates, r.toDomain())
	}
	selected := promotion.SelectActive(candidates, at)
	if selected == nil {
		return nil, nil
	}
	return NewPromotionView(selected), nil
}

func (q *pricingQueriesImpl) resolveAt(at *time.Time) time.Time {
	if at == nil {
		return q.clock.Now()
	}
	return at.UTC()
}
