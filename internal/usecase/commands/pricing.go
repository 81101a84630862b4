package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/pkg/clock"
	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/pkg/money"
	"fulfillment-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidDiscount = errs.Validation("discount must be a decimal percentage")

type CreatePromotionRequest struct {
	ProductID uuid.UUID
	Discount  string
	StartsAt  time.Time
	EndsAt    time.Time
}

type CreateCouponRequest struct {
	Code      string
	Discount  string
	Tier      string
	MaxUses   *int
	ExpiresAt time.Time
}

type ApplyCouponResult struct {
	Code            string
	OriginalPrice   decimal.Decimal
	DiscountedPrice decimal.Decimal
	Discount        decimal.Decimal
	// UsesRemaining is nil for unlimited coupons.
	UsesRemaining *int
}

type PricingCommands interface {
	CreatePromotion(ctx context.Context, req CreatePromotionRequest) (*promotion.Promotion, error)
	CreateCoupon(ctx context.Context, req CreateCouponRequest) (*promotion.Coupon, error)
	ApplyCoupon(ctx context.Context, price string, code string) (*ApplyCouponResult, error)
}

type pricingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPricingCommands(uow shared.UnitOfWork, clk clock.Clock) PricingCommands {
	return &pricingCommandsImpl{uow: uow, clock: clk}
}

func (uc *pricingCommandsImpl) CreatePromotion(ctx context.Context, req CreatePromotionRequest) (*promotion.Promotion, error) {
	discount, err := parseDiscount(req.Discount)
	if err != nil {
		return nil, err
	}
	p, err := promotion.NewPromotion(req.ProductID, discount, req.StartsAt.UTC(), req.EndsAt.UTC(), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Products().FindByID(ctx, req.ProductID); derr != nil {
			return derr
		}
		return tx.Promotions().Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *pricingCommandsImpl) CreateCoupon(ctx context.Context, req CreateCouponRequest) (*promotion.Coupon, error) {
	discount, err := parseDiscount(req.Discount)
	if err != nil {
		return nil, err
	}
	c, err := promotion.NewCoupon(req.Code, discount, req.Tier, req.MaxUses, req.ExpiresAt.UTC(), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Create(ctx, c)
	})
	if err != nil {
		// the only validation failure a store can report here is a taken code
		if errors.Is(err, errs.ErrValidation) {
			return nil, errs.Validationf("coupon code '%s' already exists", c.Code())
		}
		return nil, err
	}
	return c, nil
}

// ApplyCoupon consumes one use of the coupon and returns the discounted price.
func (uc *pricingCommandsImpl) ApplyCoupon(ctx context.Context, price string, code string) (*ApplyCouponResult, error) {
	amount, ok := money.Parse(price)
	if !ok {
		return nil, ErrInvalidPrice
	}
	code = promotion.NormalizeCode(code)
	if code == "" {
		return nil, promotion.ErrInvalidCode
	}

	var redeemed *promotion.Coupon
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		redeemed, derr = tx.Coupons().Redeem(ctx, code, uc.clock.Now())
		return derr
	})
	if err != nil {
		return nil, err
	}

	result := &ApplyCouponResult{
		Code:            redeemed.Code(),
		OriginalPrice:   money.Round(amount),
		DiscountedPrice: redeemed.Apply(amount),
		Discount:        redeemed.Discount(),
	}
	if maxUses := redeemed.MaxUses(); maxUses != nil {
		remaining := *maxUses - redeemed.UseCount()
		result.UsesRemaining = &remaining
	}
	return result, nil
}

func parseDiscount(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, ErrInvalidDiscount
	}
	return d, nil
}
