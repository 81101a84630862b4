//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/usecase/queries"
	queriesmock "fulfillment-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderQueries_List(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ordersAt := func(n int) []*queries.OrderView {
		out := make([]*queries.OrderView, 0, n)
		for i := range n {
			out = append(out, &queries.OrderView{ID: uuid.New(), Status: "pending", CreatedAt: base.Add(-time.Duration(i) * time.Minute)})
		}
		return out
	}

	t.Run("full page yields a cursor at its last order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		rows := ordersAt(3)
		store.EXPECT().ListOrders(gomock.Any(), queries.OrderFilter{}, gomock.Nil(), 3).Return(rows, nil)

		page, next, err := queries.NewOrderQueries(store).List(context.Background(), "", nil, nil, 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)
		require.NotNil(t, next)
		assert.Equal(t, queries.EncodeAfterCursor(rows[1].CreatedAt, rows[1].ID), next.After)
	})

	t.Run("filters are passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		customerID := uuid.New()
		store.EXPECT().
			ListOrders(gomock.Any(), gomock.Any(), gomock.Nil(), queries.DefaultListLimit+1).
			DoAndReturn(func(_ context.Context, filter queries.OrderFilter, _ *queries.Keyset, _ int) ([]*queries.OrderView, error) {
				require.NotNil(t, filter.Status)
				assert.Equal(t, order.StatusShipped, *filter.Status)
				require.NotNil(t, filter.CustomerID)
				assert.Equal(t, customerID, *filter.CustomerID)
				return nil, nil
			})

		page, next, err := queries.NewOrderQueries(store).List(context.Background(), "shipped", &customerID, nil, 0)
		require.NoError(t, err)
		assert.Empty(t, page)
		assert.Nil(t, next)
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)

		_, _, err := queries.NewOrderQueries(store).List(context.Background(), "lost", nil, nil, 10)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)

		_, _, err := queries.NewOrderQueries(store).List(context.Background(), "", nil, &queries.Cursor{After: "%%%"}, 10)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
