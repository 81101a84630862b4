package queries

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/returns"

	"github.com/google/uuid"
)

type ReturnReadStore interface {
	FindReturnByID(ctx context.Context, id uuid.UUID) (*ReturnRequestView, error)
	// ListReturns returns requests newest first, optionally filtered by status.
	ListReturns(ctx context.Context, status *returns.Status, after *Keyset, limit int) ([]*ReturnRequestView, error)
}

type ReturnQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReturnRequestView, error)
	List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*ReturnRequestView, *Cursor, error)
}

type returnQueriesImpl struct {
	store ReturnReadStore
}

func NewReturnQueries(store ReturnReadStore) ReturnQueries {
	return &returnQueriesImpl{store: store}
}

func (q *returnQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReturnRequestView, error) {
	return q.store.FindReturnByID(ctx, id)
}

func (q *returnQueriesImpl) List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*ReturnRequestView, *Cursor, error) {
	var filter *returns.Status
	if status != "" {
		s, err := returns.ParseStatus(status)
		if err != nil {
			return nil, nil, err
		}
		filter = &s
	}
	limit = ValidateLimit(limit)
	after, err := keysetFromCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListReturns(ctx, filter, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(r *ReturnRequestView) (time.Time, uuid.UUID) {
		return r.CreatedAt, r.ID
	})
	return page, next, nil
}
