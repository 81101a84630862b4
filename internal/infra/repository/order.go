package repository

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

// Create writes the order row and its lines. Callers run it inside a
// transaction so the order never exists without its lines.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, customer_id, customer_email, status, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7)`,
		o.ID(), o.CustomerID(), o.CustomerEmail().String(), o.Status().String(),
		o.Total().String(), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for i, l := range o.Lines() {
		if _, err = r.db.Exec(ctx, `
			INSERT INTO order_lines (order_id, position, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5::numeric)`,
			o.ID(), i+1, l.ProductID(), l.Quantity(), l.UnitPrice().String(),
		); err != nil {
			return infra.WrapRepoErr("failed to create order line", err)
		}
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.find(ctx, id, "")
}

func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.find(ctx, id, " FOR UPDATE")
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
		o.ID(), o.Status().String(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("order not found")
	}
	return nil
}

func (r *OrderRepository) find(ctx context.Context, id uuid.UUID, lock string) (*order.Order, error) {
	var (
		customerID           uuid.UUID
		email, status        string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT customer_id, customer_email, status, created_at, updated_at
		FROM orders WHERE id = $1`+lock, id,
	).Scan(&customerID, &email, &status, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}

	lines, err := LoadLines(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return order.ReconstructOrder(id, customerID, order.Email(email), order.Status(status), lines, createdAt, updatedAt), nil
}

func LoadLines(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]order.Line, error) {
	byOrder, err := LoadLinesFor(ctx, dbtx, []uuid.UUID{orderID})
	if err != nil {
		return nil, err
	}
	return byOrder[orderID], nil
}

// LoadLinesFor loads the lines of several orders in one round trip, each
// slice in line position order.
func LoadLinesFor(ctx context.Context, dbtx db.DBTX, orderIDs []uuid.UUID) (map[uuid.UUID][]order.Line, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT order_id, product_id, quantity, unit_price::text
		FROM order_lines WHERE order_id = ANY($1)
		ORDER BY order_id, position`, orderIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	defer rows.Close()

	byOrder := make(map[uuid.UUID][]order.Line, len(orderIDs))
	for rows.Next() {
		var (
			orderID, productID uuid.UUID
			quantity           int32
			price              string
		)
		if err := rows.Scan(&orderID, &productID, &quantity, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order lines", err)
		}
		unitPrice, err := pgconv.DecimalFromText(price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid order line price", err)
		}
		line, err := order.NewLine(productID, int(quantity), unitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid order line", err)
		}
		byOrder[orderID] = append(byOrder[orderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to scan order lines", err)
	}
	return byOrder, nil
}
