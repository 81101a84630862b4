//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/usecase/queries"
	queriesmock "fulfillment-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func alertsAt(base time.Time, n int) []*queries.AlertView {
	out := make([]*queries.AlertView, 0, n)
	for i := range n {
		out = append(out, &queries.AlertView{
			ID:        uuid.New(),
			RecordID:  uuid.New(),
			Stock:     i,
			Threshold: 10,
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestInventoryQueries_ListAlerts(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("full page yields next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInventoryReadStore(ctrl)
		rows := alertsAt(base, 3)
		store.EXPECT().ListAlerts(gomock.Any(), gomock.Nil(), 3).Return(rows, nil)

		page, next, err := queries.NewInventoryQueries(store).ListAlerts(context.Background(), nil, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.NotNil(t, next)

		ts, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, rows[1].CreatedAt.Equal(ts))
		assert.Equal(t, rows[1].ID, id)
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInventoryReadStore(ctrl)
		rows := alertsAt(base, 2)
		after := queries.EncodeAfterCursor(base.Add(time.Hour), uuid.New())
		store.EXPECT().ListAlerts(gomock.Any(), gomock.Not(gomock.Nil()), 3).Return(rows, nil)

		page, next, err := queries.NewInventoryQueries(store).ListAlerts(context.Background(), &queries.Cursor{After: after}, 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)
		assert.Nil(t, next)
	})

	t.Run("default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInventoryReadStore(ctrl)
		store.EXPECT().ListAlerts(gomock.Any(), gomock.Nil(), queries.DefaultListLimit+1).Return(nil, nil)

		page, next, err := queries.NewInventoryQueries(store).ListAlerts(context.Background(), nil, 0)
		require.NoError(t, err)
		assert.Empty(t, page)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInventoryReadStore(ctrl)

		_, _, err := queries.NewInventoryQueries(store).ListAlerts(context.Background(), &queries.Cursor{After: "%%%"}, 10)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestInventoryQueries_ListRecords(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	productID := uuid.New()
	rows := []*queries.InventoryRecordView{
		{ID: uuid.New(), ProductID: productID, Location: "A", CreatedAt: base},
		{ID: uuid.New(), ProductID: productID, Location: "B", CreatedAt: base.Add(-time.Minute)},
	}

	t.Run("product filter and page cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInventoryReadStore(ctrl)
		store.EXPECT().ListRecords(gomock.Any(), &productID, gomock.Nil(), 2).Return(rows, nil)

		page, next, err := queries.NewInventoryQueries(store).ListRecords(context.Background(), &productID, nil, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.NotNil(t, next)

		ts, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, rows[0].CreatedAt.Equal(ts))
		assert.Equal(t, rows[0].ID, id)
	})

	t.Run("cursor becomes keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInventoryReadStore(ctrl)
		store.EXPECT().
			ListRecords(gomock.Any(), gomock.Nil(), gomock.Any(), 11).
			DoAndReturn(func(_ context.Context, _ *uuid.UUID, after *queries.Keyset, _ int) ([]*queries.InventoryRecordView, error) {
				require.NotNil(t, after)
				assert.Equal(t, rows[1].ID, after.ID)
				return nil, nil
			})

		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(rows[1].CreatedAt, rows[1].ID)}
		page, next, err := queries.NewInventoryQueries(store).ListRecords(context.Background(), nil, cursor, 10)
		require.NoError(t, err)
		assert.Empty(t, page)
		assert.Nil(t, next)
	})
}
