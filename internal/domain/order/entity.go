package order

import (
	"time"

	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	id            uuid.UUID
	customerID    uuid.UUID
	customerEmail Email
	lines         []Line
	status        Status
	total         decimal.Decimal
	createdAt     time.Time
	updatedAt     time.Time
}

func NewOrder(customerID uuid.UUID, email Email, lines []Line, now time.Time) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if email == "" {
		return nil, ErrInvalidEmail
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	o := &Order{
		id:            uuid.New(),
		customerID:    customerID,
		customerEmail: email,
		status:        StatusPending,
		total:         decimal.Zero,
		createdAt:     now,
		updatedAt:     now,
	}
	for _, l := range lines {
		o.addLine(l)
	}
	if !money.Storable(o.total) {
		return nil, ErrTotalTooLarge
	}
	return o, nil
}

// ReconstructOrder rebuilds a persisted order. The total is always derived
// from the lines.
func ReconstructOrder(
	id, customerID uuid.UUID,
	email Email,
	status Status,
	lines []Line,
	createdAt, updatedAt time.Time,
) *Order {
	o := &Order{
		id:            id,
		customerID:    customerID,
		customerEmail: email,
		status:        status,
		total:         decimal.Zero,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
	for _, l := range lines {
		o.addLine(l)
	}
	return o
}

func (o *Order) addLine(l Line) {
	o.lines = append(o.lines, l)
	o.total = o.total.Add(l.Subtotal())
}

// TransitionTo advances the order along the status table. The order is left
// untouched when the move is not allowed.
func (o *Order) TransitionTo(next Status, now time.Time) error {
	if !o.status.CanTransitionTo(next) {
		return errs.NewInvalidTransition("order status", o.status.String(), next.String())
	}
	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) CustomerID() uuid.UUID  { return o.customerID }
func (o *Order) CustomerEmail() Email   { return o.customerEmail }
func (o *Order) Status() Status         { return o.status }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
func (o *Order) Lines() []Line          { return append([]Line(nil), o.lines...) }
