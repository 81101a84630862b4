//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/infra/repository"
	"fulfillment-engine/internal/pkg/errs"
	dbmock "fulfillment-engine/tests/mock/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func couponRow(maxUses pgtype.Int4, useCount int32, expiresAt time.Time) stubRow {
	created := expiresAt.Add(-30 * 24 * time.Hour)
	return stubRow{values: []any{uuid.New(), "SPRING10", "10", "standard", maxUses, useCount, expiresAt, created}}
}

func TestCouponRepository_Redeem(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	limit := pgtype.Int4{Int32: 2, Valid: true}

	testCases := []struct {
		name      string
		rows      []stubRow
		expectErr error
	}{
		{
			name: "success: use consumed",
			rows: []stubRow{couponRow(limit, 1, now.Add(time.Hour))},
		},
		{
			name:      "error: exhausted",
			rows:      []stubRow{{err: pgx.ErrNoRows}, couponRow(limit, 2, now.Add(time.Hour))},
			expectErr: promotion.ErrCouponExhausted,
		},
		{
			name:      "error: expired",
			rows:      []stubRow{{err: pgx.ErrNoRows}, couponRow(limit, 0, now)},
			expectErr: promotion.ErrCouponExpired,
		},
		{
			name:      "error: unknown code",
			rows:      []stubRow{{err: pgx.ErrNoRows}, {err: pgx.ErrNoRows}},
			expectErr: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := dbmock.NewMockDBTX(ctrl)
			calls := make([]any, 0, len(tc.rows))
			for _, r := range tc.rows {
				calls = append(calls, mockDB.EXPECT().QueryRow(ctx, gomock.Any(), gomock.Any()).Return(r))
			}
			gomock.InOrder(calls...)

			c, err := repository.NewCouponRepository(mockDB).Redeem(ctx, "SPRING10", now)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, c.UseCount())
			require.NotNil(t, c.MaxUses())
			assert.Equal(t, 2, *c.MaxUses())
		})
	}
}

func TestCouponRepository_RedeemUnlimited(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockDB := dbmock.NewMockDBTX(ctrl)
	mockDB.EXPECT().QueryRow(ctx, gomock.Any(), gomock.Any()).Return(couponRow(pgtype.Int4{}, 41, now.Add(time.Hour)))

	c, err := repository.NewCouponRepository(mockDB).Redeem(ctx, "SPRING10", now)
	require.NoError(t, err)
	assert.Nil(t, c.MaxUses())
}
