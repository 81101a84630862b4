//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/domain/product"
	"fulfillment-engine/internal/infra/memstore"
	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/usecase/queries"
	"fulfillment-engine/internal/usecase/shared"
	"fulfillment-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func seedRecord(t *testing.T, s *memstore.Store, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct("Mug", decimal.NewFromInt(10), now)
	require.NoError(t, err)
	rec, err := builder.NewRecordBuilder().WithProductID(p.ID()).WithStock(stock).BuildDomain()
	require.NoError(t, err)

	require.NoError(t, s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Products().Create(ctx, p); err != nil {
			return err
		}
		return tx.Inventory().Create(ctx, rec)
	}))
	return p
}

func TestStore_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	p := seedRecord(t, s, 10)

	boom := errors.New("boom")
	hookRan := false
	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Inventory().FirstForProduct(ctx, p.ID())
		require.NoError(t, err)
		_, err = tx.Inventory().Adjust(ctx, rec.ID(), -4, now)
		require.NoError(t, err)
		tx.AfterCommit(func(context.Context) { hookRan = true })
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, hookRan)

	low, err := s.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, low, "stock should still be 10 against threshold 10")
}

func TestStore_HooksRunAfterCommit(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	p := seedRecord(t, s, 10)

	var observed int
	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Inventory().FirstForProduct(ctx, p.ID())
		if err != nil {
			return err
		}
		adjusted, err := tx.Inventory().Adjust(ctx, rec.ID(), -4, now)
		if err != nil {
			return err
		}
		tx.AfterCommit(func(ctx context.Context) {
			v, err := s.FindRecordByID(ctx, adjusted.ID())
			require.NoError(t, err)
			observed = v.Stock
		})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 6, observed)
}

func TestStore_AdjustRejectsNegativeStock(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	p := seedRecord(t, s, 3)

	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Inventory().FirstForProduct(ctx, p.ID())
		if err != nil {
			return err
		}
		_, err = tx.Inventory().Adjust(ctx, rec.ID(), -4, now)
		return err
	})
	assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := memstore.New().Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStore_PanicReleasesWriteLock(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	p := seedRecord(t, s, 10)

	assert.Panics(t, func() {
		_ = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			rec, err := tx.Inventory().FirstForProduct(ctx, p.ID())
			require.NoError(t, err)
			_, err = tx.Inventory().Adjust(ctx, rec.ID(), -9, now)
			require.NoError(t, err)
			panic("handler bug")
		})
	})

	done := make(chan error, 1)
	go func() {
		done <- s.Within(ctx, func(context.Context, shared.Tx) error { return nil })
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("write lock still held after a panicking transaction")
	}

	low, err := s.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, low, "the panicking adjustment must not be visible")
}

func TestStore_ListOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	p := seedRecord(t, s, 10)

	customer := uuid.New()
	var created []*order.Order
	for i, who := range []uuid.UUID{customer, uuid.New(), customer, customer} {
		o, err := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.CustomerID = who }).
			WithItems(builder.OrderItem{ProductID: p.ID(), Quantity: 1, UnitPrice: decimal.NewFromInt(10)}).
			WithCreatedAt(now.Add(time.Duration(i) * time.Minute)).
			BuildDomain()
		require.NoError(t, err)
		require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Orders().Create(ctx, o)
		}))
		created = append(created, o)
	}

	filter := queries.OrderFilter{CustomerID: &customer}
	first, err := s.ListOrders(ctx, filter, nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, created[3].ID(), first[0].ID)
	assert.Equal(t, created[2].ID(), first[1].ID)
	assert.Len(t, first[0].Lines, 1)

	after := &queries.Keyset{CreatedAt: first[1].CreatedAt, ID: first[1].ID}
	rest, err := s.ListOrders(ctx, filter, after, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, created[0].ID(), rest[0].ID)

	shipped := order.StatusShipped
	none, err := s.ListOrders(ctx, queries.OrderFilter{Status: &shipped}, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_ListProductsBreaksTiesByID(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()

	var ids []uuid.UUID
	for range 3 {
		p, err := product.NewProduct("Mug", decimal.NewFromInt(10), now)
		require.NoError(t, err)
		require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Products().Create(ctx, p)
		}))
		ids = append(ids, p.ID())
	}

	var seen []uuid.UUID
	var after *queries.Keyset
	for {
		page, err := s.ListProducts(ctx, after, 1)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		seen = append(seen, page[0].ID)
		after = &queries.Keyset{CreatedAt: page[0].CreatedAt, ID: page[0].ID}
	}
	assert.ElementsMatch(t, ids, seen, "every product is listed exactly once")
}

func TestStore_ListRecordsByProduct(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	p := seedRecord(t, s, 10)
	seedRecord(t, s, 5)

	all, err := s.ListRecords(ctx, nil, nil, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	id := p.ID()
	mine, err := s.ListRecords(ctx, &id, nil, 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, p.ID(), mine[0].ProductID)
}
