package queries

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/order"

	"github.com/google/uuid"
)

// OrderFilter narrows an order listing. Nil fields match everything.
type OrderFilter struct {
	Status     *order.Status
	CustomerID *uuid.UUID
}

type OrderReadStore interface {
	FindOrderByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	// ListOrders returns up to limit orders newest first, strictly older than
	// after when after is set.
	ListOrders(ctx context.Context, filter OrderFilter, after *Keyset, limit int) ([]*OrderView, error)
	ListInvoicesByOrder(ctx context.Context, orderID uuid.UUID) ([]*InvoiceView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, status string, customerID *uuid.UUID, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
	ListInvoices(ctx context.Context, orderID uuid.UUID) ([]*InvoiceView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	return q.store.FindOrderByID(ctx, id)
}

func (q *orderQueriesImpl) List(ctx context.Context, status string, customerID *uuid.UUID, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	filter := OrderFilter{CustomerID: customerID}
	if status != "" {
		s, err := order.ParseStatus(status)
		if err != nil {
			return nil, nil, err
		}
		filter.Status = &s
	}
	limit = ValidateLimit(limit)
	after, err := keysetFromCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListOrders(ctx, filter, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(o *OrderView) (time.Time, uuid.UUID) {
		return o.CreatedAt, o.ID
	})
	return page, next, nil
}

// ListInvoices returns invoices oldest first.
func (q *orderQueriesImpl) ListInvoices(ctx context.Context, orderID uuid.UUID) ([]*InvoiceView, error) {
	if _, err := q.store.FindOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	return q.store.ListInvoicesByOrder(ctx, orderID)
}
