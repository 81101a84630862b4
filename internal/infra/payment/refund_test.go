//go:build unit

package payment_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"fulfillment-engine/internal/infra/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRefundProcessor_PaysEachKeyOnce(t *testing.T) {
	var buf bytes.Buffer
	p := payment.NewLoggingRefundProcessor(slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()
	key, orderID := uuid.New(), uuid.New()

	require.NoError(t, p.Refund(ctx, key, orderID, decimal.RequireFromString("80")))
	require.NoError(t, p.Refund(ctx, key, orderID, decimal.RequireFromString("80")))
	require.NoError(t, p.Refund(ctx, uuid.New(), orderID, decimal.RequireFromString("15.5")))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `msg="refund issued"`))
	assert.Equal(t, 1, strings.Count(out, `msg="refund already issued"`))
	assert.Contains(t, out, "amount=80.00")
	assert.Contains(t, out, "amount=15.50")
}
