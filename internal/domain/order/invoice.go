package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is an immutable snapshot of an order total.
type Invoice struct {
	id          uuid.UUID
	orderID     uuid.UUID
	amount      decimal.Decimal
	generatedAt time.Time
}

func NewInvoice(o *Order, now time.Time) *Invoice {
	return &Invoice{
		id:          uuid.New(),
		orderID:     o.ID(),
		amount:      o.Total(),
		generatedAt: now,
	}
}

func ReconstructInvoice(id, orderID uuid.UUID, amount decimal.Decimal, generatedAt time.Time) *Invoice {
	return &Invoice{id: id, orderID: orderID, amount: amount, generatedAt: generatedAt}
}

func (i *Invoice) ID() uuid.UUID           { return i.id }
func (i *Invoice) OrderID() uuid.UUID      { return i.orderID }
func (i *Invoice) Amount() decimal.Decimal { return i.amount }
func (i *Invoice) GeneratedAt() time.Time  { return i.generatedAt }
