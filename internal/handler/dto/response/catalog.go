package response

import (
	"time"

	"fulfillment-engine/internal/domain/product"
	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/pkg/money"
	"fulfillment-engine/internal/usecase/commands"
	"fulfillment-engine/internal/usecase/queries"
)

type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BasePrice string    `json:"base_price"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProduct(p *product.Product) *ProductResponse {
	return FromProductView(queries.NewProductView(p))
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		BasePrice: v.BasePrice.StringFixed(money.Scale),
		CreatedAt: v.CreatedAt,
	}
}

func FromProductList(views []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = FromProductView(v)
	}
	return res
}

type PromotionResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Discount  string    `json:"discount"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPromotionView(v *queries.PromotionView) *PromotionResponse {
	return &PromotionResponse{
		ID:        v.ID.String(),
		ProductID: v.ProductID.String(),
		Discount:  v.Discount.String(),
		StartsAt:  v.StartsAt,
		EndsAt:    v.EndsAt,
		CreatedAt: v.CreatedAt,
	}
}

func FromPromotion(p *promotion.Promotion) *PromotionResponse {
	return FromPromotionView(queries.NewPromotionView(p))
}

type PriceResponse struct {
	ProductID      string             `json:"product_id"`
	BasePrice      string             `json:"base_price"`
	EffectivePrice string             `json:"effective_price"`
	Promotion      *PromotionResponse `json:"promotion,omitempty"`
	At             time.Time          `json:"at"`
}

func FromPriceView(v *queries.PriceView) *PriceResponse {
	res := &PriceResponse{
		ProductID:      v.ProductID.String(),
		BasePrice:      v.BasePrice.StringFixed(money.Scale),
		EffectivePrice: v.EffectivePrice.StringFixed(money.Scale),
		At:             v.At,
	}
	if v.Promotion != nil {
		res.Promotion = FromPromotionView(v.Promotion)
	}
	return res
}

type CouponResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Discount  string    `json:"discount"`
	Tier      string    `json:"tier"`
	MaxUses   *int      `json:"max_uses"`
	UseCount  int       `json:"use_count"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCoupon(c *promotion.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:        c.ID().String(),
		Code:      c.Code(),
		Discount:  c.Discount().String(),
		Tier:      c.Tier(),
		MaxUses:   c.MaxUses(),
		UseCount:  c.UseCount(),
		ExpiresAt: c.ExpiresAt(),
		CreatedAt: c.CreatedAt(),
	}
}

type ApplyCouponResponse struct {
	Code            string `json:"code"`
	OriginalPrice   string `json:"original_price"`
	DiscountedPrice string `json:"discounted_price"`
	Discount        string `json:"discount"`
	UsesRemaining   *int   `json:"uses_remaining"`
}

func FromApplyCouponResult(r *commands.ApplyCouponResult) *ApplyCouponResponse {
	return &ApplyCouponResponse{
		Code:            r.Code,
		OriginalPrice:   r.OriginalPrice.StringFixed(money.Scale),
		DiscountedPrice: r.DiscountedPrice.StringFixed(money.Scale),
		Discount:        r.Discount.String(),
		UsesRemaining:   r.UsesRemaining,
	}
}
