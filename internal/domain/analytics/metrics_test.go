//go:build unit

package analytics_test

import (
	"testing"
	"time"

	"fulfillment-engine/internal/domain/analytics"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTurnover(t *testing.T) {
	t.Run("ratio over average inventory", func(t *testing.T) {
		got := analytics.ComputeTurnover(decimal.RequireFromString("500"), 60, 40)
		require.NotNil(t, got.Ratio)
		assert.Equal(t, "50", got.AverageInventory.String())
		assert.Equal(t, "10", got.Ratio.String())
	})

	t.Run("zero average inventory yields no ratio", func(t *testing.T) {
		got := analytics.ComputeTurnover(decimal.RequireFromString("120.50"), 0, 0)
		assert.Nil(t, got.Ratio)
		assert.Equal(t, "120.50", got.Revenue.StringFixed(2))
	})

	t.Run("ratio keeps four decimals", func(t *testing.T) {
		got := analytics.ComputeTurnover(decimal.NewFromInt(10), 1, 2)
		require.NotNil(t, got.Ratio)
		assert.Equal(t, "6.6667", got.Ratio.String())
	})
}

func TestRankProducts(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	c := uuid.MustParse("00000000-0000-0000-0000-00000000000c")

	totals := []analytics.ProductQuantity{
		{ProductID: c, Quantity: 5},
		{ProductID: b, Quantity: 9},
		{ProductID: a, Quantity: 5},
	}

	got, err := analytics.RankProducts(totals, 10)
	require.NoError(t, err)
	want := []analytics.ProductQuantity{
		{ProductID: b, Quantity: 9},
		{ProductID: a, Quantity: 5},
		{ProductID: c, Quantity: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RankProducts() mismatch (-want +got):\n%s", diff)
	}

	top, err := analytics.RankProducts(totals, 2)
	require.NoError(t, err)
	if diff := cmp.Diff(want[:2], top); diff != "" {
		t.Errorf("RankProducts(topN=2) mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, c, totals[0].ProductID, "input must not be reordered")

	_, err = analytics.RankProducts(totals, 0)
	assert.ErrorIs(t, err, analytics.ErrInvalidTopN)
}

func TestForecastDemand(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	past, err := analytics.NewWindow(start, start.AddDate(0, 0, 30))
	require.NoError(t, err)
	future, err := analytics.NewWindow(start.AddDate(0, 0, 30), start.AddDate(0, 0, 37))
	require.NoError(t, err)

	assert.Equal(t, "14.00", analytics.ForecastDemand(60, past, future).StringFixed(2))
	assert.True(t, analytics.ForecastDemand(0, past, future).IsZero())
}

func TestWindow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := analytics.NewWindow(start, start)
	assert.ErrorIs(t, err, analytics.ErrInvalidWindow)

	w, err := analytics.NewWindow(start, start.Add(48*time.Hour))
	require.NoError(t, err)
	assert.True(t, w.Contains(start))
	assert.False(t, w.Contains(w.End))
	assert.InDelta(t, 2.0, w.Days(), 1e-9)
}
