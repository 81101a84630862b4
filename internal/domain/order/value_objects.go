package order

import (
	"math"
	"strings"

	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxQuantity = math.MaxInt32

var (
	ErrNoLines             = errs.Validation("order must contain at least one line")
	ErrNonPositiveQuantity = errs.Validation("line quantity must be a positive integer")
	ErrQuantityTooLarge    = errs.Validationf("line quantity cannot exceed %d", MaxQuantity)
	ErrNegativeUnitPrice   = errs.Validation("line unit price cannot be negative")
	ErrUnitPriceTooLarge   = errs.Validation("line unit price must be below 1000000000000")
	ErrTotalTooLarge       = errs.Validation("order total must be below 1000000000000")
	ErrInvalidEmail        = errs.Validation("invalid customer email")
	ErrMissingCustomer     = errs.Validation("customer reference is required")
	ErrMissingProduct      = errs.Validation("line product reference is required")
)

// Line is one product/quantity/price entry. The unit price is a snapshot taken
// when the order is created and never changes afterwards.
type Line struct {
	productID uuid.UUID
	quantity  int
	unitPrice decimal.Decimal
}

func NewLine(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (Line, error) {
	if productID == uuid.Nil {
		return Line{}, ErrMissingProduct
	}
	if quantity <= 0 {
		return Line{}, ErrNonPositiveQuantity
	}
	if quantity > MaxQuantity {
		return Line{}, ErrQuantityTooLarge
	}
	if unitPrice.IsNegative() {
		return Line{}, ErrNegativeUnitPrice
	}
	if !money.Storable(unitPrice) {
		return Line{}, ErrUnitPriceTooLarge
	}
	return Line{productID: productID, quantity: quantity, unitPrice: money.Round(unitPrice)}, nil
}

func (l Line) ProductID() uuid.UUID       { return l.productID }
func (l Line) Quantity() int              { return l.quantity }
func (l Line) UnitPrice() decimal.Decimal { return l.unitPrice }

func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

type Email string

func NewEmail(v string) (Email, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", ErrInvalidEmail
	}
	at := strings.Index(v, "@")
	if at <= 0 || at == len(v)-1 {
		return "", ErrInvalidEmail
	}
	return Email(v), nil
}

func (e Email) String() string { return string(e) }
