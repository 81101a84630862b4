package promotion

import (
	"math"
	"regexp"
	"strings"
	"time"

	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultTier  = "standard"
	MaxUsesLimit = math.MaxInt32
)

var codePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

var (
	ErrInvalidCode     = errs.Validation("coupon code must be 3-32 characters of A-Z, 0-9, '_' or '-'")
	ErrNegativeMaxUses = errs.Validation("coupon max uses cannot be negative")
	ErrMaxUsesTooLarge = errs.Validationf("coupon max uses cannot exceed %d", MaxUsesLimit)
	ErrMissingExpiry   = errs.Validation("coupon expiry is required")
	ErrInvalidTier     = errs.Validation("coupon tier cannot be longer than 32 characters")

	ErrCouponExpired   = errs.Mark(errs.New("coupon has expired"), errs.ErrCouponInvalid)
	ErrCouponExhausted = errs.Mark(errs.New("coupon has no remaining uses"), errs.ErrCouponInvalid)
)

// Coupon is a code-activated percentage discount, independent of product
// promotions. A nil maxUses means unlimited redemptions.
type Coupon struct {
	id        uuid.UUID
	code      string
	discount  decimal.Decimal
	tier      string
	maxUses   *int
	useCount  int
	expiresAt time.Time
	createdAt time.Time
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NewCoupon(code string, discount decimal.Decimal, tier string, maxUses *int, expiresAt, now time.Time) (*Coupon, error) {
	code = NormalizeCode(code)
	if !codePattern.MatchString(code) {
		return nil, ErrInvalidCode
	}
	if !money.ValidPercent(discount) {
		return nil, ErrDiscountRange
	}
	tier = strings.TrimSpace(tier)
	if tier == "" {
		tier = DefaultTier
	}
	if len(tier) > 32 {
		return nil, ErrInvalidTier
	}
	if maxUses != nil && *maxUses < 0 {
		return nil, ErrNegativeMaxUses
	}
	if maxUses != nil && *maxUses > MaxUsesLimit {
		return nil, ErrMaxUsesTooLarge
	}
	if expiresAt.IsZero() {
		return nil, ErrMissingExpiry
	}
	return &Coupon{
		id:        uuid.New(),
		code:      code,
		discount:  discount,
		tier:      tier,
		maxUses:   maxUses,
		expiresAt: expiresAt,
		createdAt: now,
	}, nil
}

func ReconstructCoupon(id uuid.UUID, code string, discount decimal.Decimal, tier string, maxUses *int, useCount int, expiresAt, createdAt time.Time) *Coupon {
	return &Coupon{
		id:        id,
		code:      code,
		discount:  discount,
		tier:      tier,
		maxUses:   maxUses,
		useCount:  useCount,
		expiresAt: expiresAt,
		createdAt: createdAt,
	}
}

// CheckRedeemable reports why the coupon cannot be used at now, if it cannot.
func (c *Coupon) CheckRedeemable(now time.Time) error {
	if !now.Before(c.expiresAt) {
		return ErrCouponExpired
	}
	if c.maxUses != nil && c.useCount >= *c.maxUses {
		return ErrCouponExhausted
	}
	return nil
}

// Redeem consumes one use. Callers that share a coupon across goroutines must
// hold the row exclusively while calling it.
func (c *Coupon) Redeem(now time.Time) error {
	if err := c.CheckRedeemable(now); err != nil {
		return err
	}
	c.useCount++
	return nil
}

func (c *Coupon) Apply(price decimal.Decimal) decimal.Decimal {
	return money.ApplyPercentOff(price, c.discount)
}

func (c *Coupon) ID() uuid.UUID             { return c.id }
func (c *Coupon) Code() string              { return c.code }
func (c *Coupon) Discount() decimal.Decimal { return c.discount }
func (c *Coupon) Tier() string              { return c.tier }
func (c *Coupon) UseCount() int             { return c.useCount }
func (c *Coupon) ExpiresAt() time.Time      { return c.expiresAt }
func (c *Coupon) CreatedAt() time.Time      { return c.createdAt }

func (c *Coupon) MaxUses() *int {
	if c.maxUses == nil {
		return nil
	}
	v := *c.maxUses
	return &v
}
