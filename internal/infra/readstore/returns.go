package readstore

import (
	"context"

	"fulfillment-engine/internal/domain/returns"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/infra/repository"
	"fulfillment-engine/internal/pkg/pgconv"
	"fulfillment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReturnReadStore struct {
	db db.DBTX
}

func NewReturnReadStore(dbtx db.DBTX) *ReturnReadStore {
	return &ReturnReadStore{db: dbtx}
}

func (r *ReturnReadStore) FindReturnByID(ctx context.Context, id uuid.UUID) (*queries.ReturnRequestView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+repository.ReturnColumns+` FROM return_requests WHERE id = $1`, id)
	req, err := repository.ScanReturn(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("return request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get return request", err)
	}
	return queries.NewReturnRequestView(req), nil
}

// ListReturns passes NULL for absent filters so one statement serves every
// combination of status filter and page position.
func (r *ReturnReadStore) ListReturns(ctx context.Context, status *returns.Status, after *queries.Keyset, limit int) ([]*queries.ReturnRequestView, error) {
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}
	var (
		afterAt any
		afterID any
	)
	if after != nil {
		afterAt, afterID = after.CreatedAt, after.ID
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+repository.ReturnColumns+` FROM return_requests
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2, $3::uuid))
		ORDER BY created_at DESC, id DESC
		LIMIT $4`, statusArg, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list return requests", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ReturnRequestView, error) {
		req, err := repository.ScanReturn(row)
		if err != nil {
			return nil, err
		}
		return queries.NewReturnRequestView(req), nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan return requests", err)
	}
	return views, nil
}
