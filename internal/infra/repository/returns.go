package repository

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/returns"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const ReturnColumns = `id, order_id, reason, request_type, status, created_at, processed_at`

type ReturnRepository struct {
	db db.DBTX
}

func NewReturnRepository(dbtx db.DBTX) *ReturnRepository {
	return &ReturnRepository{db: dbtx}
}

func (r *ReturnRepository) Create(ctx context.Context, req *returns.Request) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO return_requests (`+ReturnColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		req.ID(), req.OrderID(), req.Reason(), string(req.Type()), string(req.Status()),
		req.CreatedAt(), req.ProcessedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create return request", err)
	}
	return nil
}

func (r *ReturnRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*returns.Request, error) {
	row := r.db.QueryRow(ctx, `SELECT `+ReturnColumns+` FROM return_requests WHERE id = $1 FOR UPDATE`, id)
	req, err := ScanReturn(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("return request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get return request", err)
	}
	return req, nil
}

func (r *ReturnRepository) UpdateStatus(ctx context.Context, req *returns.Request) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE return_requests SET status = $2, processed_at = $3 WHERE id = $1`,
		req.ID(), string(req.Status()), req.ProcessedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update return request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("return request not found")
	}
	return nil
}

// ScanReturn expects the columns in ReturnColumns order.
func ScanReturn(row pgx.Row) (*returns.Request, error) {
	var (
		id, orderID                 uuid.UUID
		reason, requestType, status string
		createdAt                   time.Time
		processedAt                 pgtype.Timestamptz
	)
	if err := row.Scan(&id, &orderID, &reason, &requestType, &status, &createdAt, &processedAt); err != nil {
		return nil, err
	}
	return returns.ReconstructRequest(
		id, orderID, reason, returns.RequestType(requestType), returns.Status(status),
		createdAt, pgconv.TimeFromPgtype(processedAt),
	), nil
}
