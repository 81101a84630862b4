//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"fulfillment-engine/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jan1 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	feb1 = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
)

func newPromotion(t *testing.T, discount string, start, end, created time.Time) *promotion.Promotion {
	t.Helper()
	p, err := promotion.NewPromotion(uuid.New(), decimal.RequireFromString(discount), start, end, created)
	require.NoError(t, err)
	return p
}

func TestNewPromotion(t *testing.T) {
	cases := []struct {
		name     string
		discount string
		start    time.Time
		end      time.Time
		errIs    error
	}{
		{"valid", "20", jan1, feb1, nil},
		{"zero percent", "0", jan1, feb1, nil},
		{"hundred percent", "100", jan1, feb1, nil},
		{"above hundred", "100.01", jan1, feb1, promotion.ErrDiscountRange},
		{"negative", "-1", jan1, feb1, promotion.ErrDiscountRange},
		{"empty window", "20", jan1, jan1, promotion.ErrInvalidWindow},
		{"inverted window", "20", feb1, jan1, promotion.ErrInvalidWindow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := promotion.NewPromotion(uuid.New(), decimal.RequireFromString(tc.discount), tc.start, tc.end, jan1)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPromotion_Covers(t *testing.T) {
	p := newPromotion(t, "20", jan1, feb1, jan1)

	assert.True(t, p.Covers(jan1), "start is inclusive")
	assert.True(t, p.Covers(feb1.Add(-time.Nanosecond)))
	assert.False(t, p.Covers(feb1), "end is exclusive")
	assert.False(t, p.Covers(jan1.Add(-time.Second)))
}

func TestSelectActive(t *testing.T) {
	mid := jan1.Add(10 * 24 * time.Hour)

	t.Run("nothing covers", func(t *testing.T) {
		p := newPromotion(t, "20", jan1, jan1.Add(time.Hour), jan1)
		assert.Nil(t, promotion.SelectActive([]*promotion.Promotion{p}, mid))
		assert.Nil(t, promotion.SelectActive(nil, mid))
	})

	t.Run("most recently created wins", func(t *testing.T) {
		older := newPromotion(t, "10", jan1, feb1, jan1)
		newer := newPromotion(t, "30", jan1, feb1, jan1.Add(time.Minute))

		assert.Equal(t, newer.ID(), promotion.SelectActive([]*promotion.Promotion{older, newer}, mid).ID())
		assert.Equal(t, newer.ID(), promotion.SelectActive([]*promotion.Promotion{newer, older}, mid).ID())
	})

	t.Run("equal creation time is decided by id", func(t *testing.T) {
		a := promotion.ReconstructPromotion(uuid.MustParse("00000000-0000-0000-0000-000000000001"), uuid.New(), decimal.NewFromInt(10), jan1, feb1, jan1)
		b := promotion.ReconstructPromotion(uuid.MustParse("00000000-0000-0000-0000-000000000002"), uuid.New(), decimal.NewFromInt(20), jan1, feb1, jan1)

		assert.Equal(t, b.ID(), promotion.SelectActive([]*promotion.Promotion{a, b}, mid).ID())
		assert.Equal(t, b.ID(), promotion.SelectActive([]*promotion.Promotion{b, a}, mid).ID())
	})
}

func TestEffectivePrice(t *testing.T) {
	base := decimal.RequireFromString("100.00")

	assert.Equal(t, "100.00", promotion.EffectivePrice(base, nil).StringFixed(2))
	assert.Equal(t, "80.00", promotion.EffectivePrice(base, newPromotion(t, "20", jan1, feb1, jan1)).StringFixed(2))
	assert.Equal(t, "0.00", promotion.EffectivePrice(base, newPromotion(t, "100", jan1, feb1, jan1)).StringFixed(2))
	assert.Equal(t, "6.66", promotion.EffectivePrice(decimal.RequireFromString("9.99"), newPromotion(t, "33.3333", jan1, feb1, jan1)).StringFixed(2))
}
