package request

import (
	"time"

	"fulfillment-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePromotionRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Discount  string    `json:"discount" binding:"required"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	EndsAt    time.Time `json:"ends_at" binding:"required"`
}

func (r *CreatePromotionRequest) ToCommand() commands.CreatePromotionRequest {
	return commands.CreatePromotionRequest{
		ProductID: r.ProductID,
		Discount:  r.Discount,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
	}
}

type CreateCouponRequest struct {
	Code      string    `json:"code" binding:"required"`
	Discount  string    `json:"discount" binding:"required"`
	Tier      string    `json:"tier"`
	MaxUses   *int      `json:"max_uses"`
	ExpiresAt time.Time `json:"expires_at" binding:"required"`
}

func (r *CreateCouponRequest) ToCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Code:      r.Code,
		Discount:  r.Discount,
		Tier:      r.Tier,
		MaxUses:   r.MaxUses,
		ExpiresAt: r.ExpiresAt,
	}
}

type ApplyCouponRequest struct {
	Price string `json:"price" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type PriceQuery struct {
	// At is RFC 3339; empty means now.
	At string `form:"at"`
}
