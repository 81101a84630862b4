package readstore

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/infra/repository"
	"fulfillment-engine/internal/pkg/pgconv"
	"fulfillment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindOrderByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	o, err := repository.NewOrderRepository(r.db).FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.NewOrderView(o), nil
}

// ListOrders reads one page of orders and then their lines in a single
// batch. Absent filters are passed as NULL.
func (r *OrderReadStore) ListOrders(ctx context.Context, filter queries.OrderFilter, after *queries.Keyset, limit int) ([]*queries.OrderView, error) {
	var (
		statusArg   *string
		customerArg any
		afterAt     any
		afterID     any
	)
	if filter.Status != nil {
		s := filter.Status.String()
		statusArg = &s
	}
	if filter.CustomerID != nil {
		customerArg = *filter.CustomerID
	}
	if after != nil {
		afterAt, afterID = after.CreatedAt, after.ID
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, customer_id, customer_email, status, created_at, updated_at
		FROM orders
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::uuid IS NULL OR customer_id = $2)
		  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
		ORDER BY created_at DESC, id DESC
		LIMIT $5`, statusArg, customerArg, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}

	type orderRow struct {
		id, customerID       uuid.UUID
		email, status        string
		createdAt, updatedAt time.Time
	}
	heads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (orderRow, error) {
		var h orderRow
		err := row.Scan(&h.id, &h.customerID, &h.email, &h.status, &h.createdAt, &h.updatedAt)
		return h, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan orders", err)
	}
	if len(heads) == 0 {
		return []*queries.OrderView{}, nil
	}

	ids := make([]uuid.UUID, len(heads))
	for i, h := range heads {
		ids[i] = h.id
	}
	lines, err := repository.LoadLinesFor(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*queries.OrderView, 0, len(heads))
	for _, h := range heads {
		o := order.ReconstructOrder(h.id, h.customerID, order.Email(h.email), order.Status(h.status), lines[h.id], h.createdAt, h.updatedAt)
		views = append(views, queries.NewOrderView(o))
	}
	return views, nil
}

func (r *OrderReadStore) ListInvoicesByOrder(ctx context.Context, orderID uuid.UUID) ([]*queries.InvoiceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, amount::text, generated_at
		FROM invoices WHERE order_id = $1
		ORDER BY generated_at, id`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.InvoiceView, error) {
		var (
			v      queries.InvoiceView
			amount string
		)
		if err := row.Scan(&v.ID, &v.OrderID, &amount, &v.GeneratedAt); err != nil {
			return nil, err
		}
		d, err := pgconv.DecimalFromText(amount)
		if err != nil {
			return nil, err
		}
		v.Amount = d
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan invoices", err)
	}
	return views, nil
}
