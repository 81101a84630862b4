package repository

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecordColumns is the select list ScanRecord expects.
const RecordColumns = `id, product_id, location, stock, threshold, created_at, updated_at`

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

func (r *InventoryRepository) Create(ctx context.Context, rec *inventory.Record) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory_records (`+RecordColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID(), rec.ProductID(), rec.Location(), rec.Stock(), rec.Threshold(), rec.CreatedAt(), rec.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create inventory record", err)
	}
	return nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Record, error) {
	row := r.db.QueryRow(ctx, `SELECT `+RecordColumns+` FROM inventory_records WHERE id = $1`, id)
	rec, err := ScanRecord(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get inventory record", err)
	}
	return rec, nil
}

func (r *InventoryRepository) FirstForProduct(ctx context.Context, productID uuid.UUID) (*inventory.Record, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+RecordColumns+` FROM inventory_records
		WHERE product_id = $1
		ORDER BY id
		LIMIT 1`, productID)
	rec, err := ScanRecord(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no inventory record for product", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get inventory record for product", err)
	}
	return rec, nil
}

// Adjust is a single conditional UPDATE; the row lock it takes serialises
// concurrent adjustments of the same record. When no row matches, a follow-up
// lookup tells a missing record apart from a rejected adjustment.
func (r *InventoryRepository) Adjust(ctx context.Context, id uuid.UUID, delta int, now time.Time) (*inventory.Record, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE inventory_records
		SET stock = stock + $2, updated_at = $3
		WHERE id = $1 AND stock::bigint + $2::bigint BETWEEN 0 AND $4
		RETURNING `+RecordColumns, id, delta, now, inventory.MaxStock)
	rec, err := ScanRecord(row)
	if err == nil {
		return rec, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to adjust stock", err)
	}

	cur, ferr := r.FindByID(ctx, id)
	if ferr != nil {
		return nil, ferr
	}
	if aerr := cur.Adjust(delta, now); aerr != nil {
		return nil, aerr
	}
	return nil, inventory.ErrInsufficientStock
}

func (r *InventoryRepository) AppendMovement(ctx context.Context, m inventory.Movement) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO stock_movements (id, record_id, delta, stock_after, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.RecordID, m.Delta, m.StockAfter, m.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append stock movement", err)
	}
	return nil
}

func ScanRecord(row pgx.Row) (*inventory.Record, error) {
	var (
		id, productID    uuid.UUID
		location         string
		stock, threshold     int32
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &productID, &location, &stock, &threshold, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return inventory.ReconstructRecord(id, productID, location, int(stock), int(threshold), createdAt, updatedAt), nil
}
