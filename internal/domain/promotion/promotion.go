package promotion

import (
	"time"

	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingProduct = errs.Validation("promotion requires a product")
	ErrDiscountRange  = errs.Validation("discount percentage must be between 0 and 100")
	ErrInvalidWindow  = errs.Validation("promotion window start must be before end")
)

// Promotion is a percentage discount on one product over the half-open
// window [start, end).
type Promotion struct {
	id        uuid.UUID
	productID uuid.UUID
	discount  decimal.Decimal
	startsAt  time.Time
	endsAt    time.Time
	createdAt time.Time
}

func NewPromotion(productID uuid.UUID, discount decimal.Decimal, startsAt, endsAt, now time.Time) (*Promotion, error) {
	if productID == uuid.Nil {
		return nil, ErrMissingProduct
	}
	if !money.ValidPercent(discount) {
		return nil, ErrDiscountRange
	}
	if !startsAt.Before(endsAt) {
		return nil, ErrInvalidWindow
	}
	return &Promotion{
		id:        uuid.New(),
		productID: productID,
		discount:  discount,
		startsAt:  startsAt,
		endsAt:    endsAt,
		createdAt: now,
	}, nil
}

func ReconstructPromotion(id, productID uuid.UUID, discount decimal.Decimal, startsAt, endsAt, createdAt time.Time) *Promotion {
	return &Promotion{
		id:        id,
		productID: productID,
		discount:  discount,
		startsAt:  startsAt,
		endsAt:    endsAt,
		createdAt: createdAt,
	}
}

func (p *Promotion) Covers(at time.Time) bool {
	return !at.Before(p.startsAt) && at.Before(p.endsAt)
}

func (p *Promotion) Apply(base decimal.Decimal) decimal.Decimal {
	return money.ApplyPercentOff(base, p.discount)
}

func (p *Promotion) ID() uuid.UUID             { return p.id }
func (p *Promotion) ProductID() uuid.UUID      { return p.productID }
func (p *Promotion) Discount() decimal.Decimal { return p.discount }
func (p *Promotion) StartsAt() time.Time       { return p.startsAt }
func (p *Promotion) EndsAt() time.Time         { return p.endsAt }
func (p *Promotion) CreatedAt() time.Time      { return p.createdAt }

// SelectActive returns the promotion covering at. When several overlap the most
// recently created wins; equal creation times fall back to the larger id so the
// choice is deterministic. Returns nil when nothing covers at.
func SelectActive(candidates []*Promotion, at time.Time) *Promotion {
	var active *Promotion
	for _, p := range candidates {
		if !p.Covers(at) {
			continue
		}
		if active == nil || newer(p, active) {
			active = p
		}
	}
	return active
}

func newer(a, b *Promotion) bool {
	if !a.createdAt.Equal(b.createdAt) {
		return a.createdAt.After(b.createdAt)
	}
	return a.id.String() > b.id.String()
}

// EffectivePrice is base when no promotion applies, otherwise the discounted
// base rounded to cents.
func EffectivePrice(base decimal.Decimal, active *Promotion) decimal.Decimal {
	if active == nil {
		return money.Round(base)
	}
	return active.Apply(base)
}
