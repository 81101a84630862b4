//go:build unit || e2e

package builder

import (
	"time"

	"fulfillment-engine/internal/domain/promotion"
	reqdto "fulfillment-engine/internal/handler/dto/request"
	"fulfillment-engine/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	Code      string
	Discount  decimal.Decimal
	Tier      string
	MaxUses   *int
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewCouponBuilder() *CouponBuilder {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &CouponBuilder{
		Code:      "SPRING10",
		Discount:  decimal.NewFromInt(10),
		Tier:      promotion.DefaultTier,
		ExpiresAt: created.Add(30 * 24 * time.Hour),
		CreatedAt: created,
	}
}

func (b *CouponBuilder) BuildDomain() (*promotion.Coupon, error) {
	return promotion.NewCoupon(b.Code, b.Discount, b.Tier, b.MaxUses, b.ExpiresAt, b.CreatedAt)
}

func (b *CouponBuilder) BuildCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Code:      b.Code,
		Discount:  b.Discount.String(),
		Tier:      b.Tier,
		MaxUses:   b.MaxUses,
		ExpiresAt: b.ExpiresAt,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:      b.Code,
		Discount:  b.Discount.String(),
		Tier:      b.Tier,
		MaxUses:   b.MaxUses,
		ExpiresAt: b.ExpiresAt,
	}
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithDiscount(percent string) *CouponBuilder {
	b.Discount = decimal.RequireFromString(percent)
	return b
}

func (b *CouponBuilder) WithMaxUses(n int) *CouponBuilder {
	b.MaxUses = &n
	return b
}

func (b *CouponBuilder) WithExpiresAt(t time.Time) *CouponBuilder {
	b.ExpiresAt = t
	return b
}
