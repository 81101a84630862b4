//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/repository"
	"fulfillment-engine/internal/pkg/errs"
	dbmock "fulfillment-engine/tests/mock/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	created := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	t.Run("success: scans the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		mockDB.EXPECT().QueryRow(ctx, gomock.Any(), id).
			Return(stubRow{values: []any{id, "Desk Lamp", "49.90", created}})

		p, err := repository.NewProductRepository(mockDB).FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
		assert.Equal(t, "Desk Lamp", p.Name())
		assert.True(t, decimal.RequireFromString("49.90").Equal(p.BasePrice()))
		assert.True(t, created.Equal(p.CreatedAt()))
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		mockDB.EXPECT().QueryRow(ctx, gomock.Any(), id).Return(stubRow{err: pgx.ErrNoRows})

		_, err := repository.NewProductRepository(mockDB).FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("error: unreadable price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		mockDB.EXPECT().QueryRow(ctx, gomock.Any(), id).
			Return(stubRow{values: []any{id, "Desk Lamp", "n/a", created}})

		_, err := repository.NewProductRepository(mockDB).FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
