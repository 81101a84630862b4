//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a single connection and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestProduct(t *testing.T, db DBLike, name, basePrice string) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (id, name, base_price, created_at) VALUES ($1, $2, $3::numeric, now())",
		productID, name, basePrice)
	require.NoError(t, err)

	return productID
}

func CreateTestRecord(t *testing.T, db DBLike, productID uuid.UUID, location string, stock, threshold int) uuid.UUID {
	t.Helper()
	return CreateTestRecordAt(t, db, productID, location, stock, threshold, time.Now().UTC())
}

// CreateTestRecordAt inserts a record created at createdAt together with the
// opening movement the application books for its initial stock.
func CreateTestRecordAt(t *testing.T, db DBLike, productID uuid.UUID, location string, stock, threshold int, createdAt time.Time) uuid.UUID {
	t.Helper()

	recordID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO inventory_records (id, product_id, location, stock, threshold, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $6)",
		recordID, productID, location, stock, threshold, createdAt)
	require.NoError(t, err)

	if stock > 0 {
		_, err = db.Exec(context.Background(),
			"INSERT INTO stock_movements (id, record_id, delta, stock_after, created_at) VALUES ($1, $2, $3, $3, $4)",
			uuid.New(), recordID, stock, createdAt)
		require.NoError(t, err)
	}

	return recordID
}

func CreateTestCoupon(t *testing.T, db DBLike, code, discount string, maxUses *int, expiresAt time.Time) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, code, discount, tier, max_uses, use_count, expires_at, created_at) VALUES ($1, $2, $3::numeric, 'standard', $4, 0, $5, now())",
		couponID, code, discount, maxUses, expiresAt)
	require.NoError(t, err)

	return couponID
}

func StockOf(t *testing.T, db DBLike, recordID uuid.UUID) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM inventory_records WHERE id = $1", recordID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
