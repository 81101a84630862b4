package readstore

import (
	"context"

	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/infra/repository"
	"fulfillment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

func (r *InventoryReadStore) FindRecordByID(ctx context.Context, id uuid.UUID) (*queries.InventoryRecordView, error) {
	rec, err := repository.NewInventoryRepository(r.db).FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.NewInventoryRecordView(rec), nil
}

func (r *InventoryReadStore) ListRecords(ctx context.Context, productID *uuid.UUID, after *queries.Keyset, limit int) ([]*queries.InventoryRecordView, error) {
	var (
		productArg any
		afterAt    any
		afterID    any
	)
	if productID != nil {
		productArg = *productID
	}
	if after != nil {
		afterAt, afterID = after.CreatedAt, after.ID
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+repository.RecordColumns+` FROM inventory_records
		WHERE ($1::uuid IS NULL OR product_id = $1)
		  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2, $3::uuid))
		ORDER BY created_at DESC, id DESC
		LIMIT $4`, productArg, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory records", err)
	}
	return collectRecordViews(rows)
}

func (r *InventoryReadStore) ListLowStock(ctx context.Context) ([]*queries.InventoryRecordView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+repository.RecordColumns+` FROM inventory_records
		WHERE stock < threshold
		ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list low stock records", err)
	}
	return collectRecordViews(rows)
}

func collectRecordViews(rows pgx.Rows) ([]*queries.InventoryRecordView, error) {
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.InventoryRecordView, error) {
		rec, err := repository.ScanRecord(row)
		if err != nil {
			return nil, err
		}
		return queries.NewInventoryRecordView(rec), nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan inventory records", err)
	}
	return views, nil
}

func (r *InventoryReadStore) ListAlerts(ctx context.Context, after *queries.Keyset, limit int) ([]*queries.AlertView, error) {
	const cols = `id, record_id, product_id, location, stock, threshold, message, created_at`

	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		rows, err = r.db.Query(ctx, `
			SELECT `+cols+` FROM alerts
			ORDER BY created_at DESC, id DESC
			LIMIT $1`, limit)
	} else {
		rows, err = r.db.Query(ctx, `
			SELECT `+cols+` FROM alerts
			WHERE (created_at, id) < ($1, $2)
			ORDER BY created_at DESC, id DESC
			LIMIT $3`, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list alerts", err)
	}

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.AlertView, error) {
		var (
			v                queries.AlertView
			stock, threshold int32
		)
		if err := row.Scan(&v.ID, &v.RecordID, &v.ProductID, &v.Location, &stock, &threshold, &v.Message, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.Stock, v.Threshold = int(stock), int(threshold)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan alerts", err)
	}
	return views, nil
}
