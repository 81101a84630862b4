package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type InventoryReadStore interface {
	FindRecordByID(ctx context.Context, id uuid.UUID) (*InventoryRecordView, error)
	// ListRecords returns up to limit records newest first, optionally
	// restricted to one product.
	ListRecords(ctx context.Context, productID *uuid.UUID, after *Keyset, limit int) ([]*InventoryRecordView, error)
	// ListLowStock returns records with stock below threshold ordered by id.
	ListLowStock(ctx context.Context) ([]*InventoryRecordView, error)
	// ListAlerts returns up to limit alerts newest first, strictly older than
	// after when after is set.
	ListAlerts(ctx context.Context, after *Keyset, limit int) ([]*AlertView, error)
}

type InventoryQueries interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*InventoryRecordView, error)
	ListRecords(ctx context.Context, productID *uuid.UUID, cursor *Cursor, limit int) ([]*InventoryRecordView, *Cursor, error)
	GetLowStock(ctx context.Context) ([]*InventoryRecordView, error)
	ListAlerts(ctx context.Context, cursor *Cursor, limit int) ([]*AlertView, *Cursor, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) GetRecord(ctx context.Context, id uuid.UUID) (*InventoryRecordView, error) {
	return q.store.FindRecordByID(ctx, id)
}

func (q *inventoryQueriesImpl) ListRecords(ctx context.Context, productID *uuid.UUID, cursor *Cursor, limit int) ([]*InventoryRecordView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFromCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListRecords(ctx, productID, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(r *InventoryRecordView) (time.Time, uuid.UUID) {
		return r.CreatedAt, r.ID
	})
	return page, next, nil
}

func (q *inventoryQueriesImpl) GetLowStock(ctx context.Context) ([]*InventoryRecordView, error) {
	return q.store.ListLowStock(ctx)
}

func (q *inventoryQueriesImpl) ListAlerts(ctx context.Context, cursor *Cursor, limit int) ([]*AlertView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFromCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListAlerts(ctx, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(a *AlertView) (time.Time, uuid.UUID) {
		return a.CreatedAt, a.ID
	})
	return page, next, nil
}
