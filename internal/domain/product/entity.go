package product

import (
	"strings"
	"time"

	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxNameLength = 255

var (
	ErrEmptyName     = errs.Validation("product name cannot be empty")
	ErrNameTooLong   = errs.Validation("product name is too long (max 255 characters)")
	ErrNegativePrice = errs.Validation("base price cannot be negative")
	ErrPriceTooLarge = errs.Validation("base price must be below 1000000000000")
)

// Product is the catalog entry that supplies the base price of an order line.
type Product struct {
	id        uuid.UUID
	name      string
	basePrice decimal.Decimal
	createdAt time.Time
}

func NewProduct(name string, basePrice decimal.Decimal, now time.Time) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if !money.Storable(basePrice) {
		return nil, ErrPriceTooLarge
	}
	return &Product{
		id:        uuid.New(),
		name:      name,
		basePrice: money.Round(basePrice),
		createdAt: now,
	}, nil
}

func ReconstructProduct(id uuid.UUID, name string, basePrice decimal.Decimal, createdAt time.Time) *Product {
	return &Product{id: id, name: name, basePrice: basePrice, createdAt: createdAt}
}

func (p *Product) ID() uuid.UUID              { return p.id }
func (p *Product) Name() string               { return p.name }
func (p *Product) BasePrice() decimal.Decimal { return p.basePrice }
func (p *Product) CreatedAt() time.Time       { return p.createdAt }
