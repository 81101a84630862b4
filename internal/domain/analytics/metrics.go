package analytics

import (
	"bytes"
	"sort"

	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidTopN = errs.Validation("top_n must be a positive integer")

type Turnover struct {
	Revenue          decimal.Decimal
	StartingStock    int
	EndingStock      int
	AverageInventory decimal.Decimal
	// Ratio is nil when the average inventory is zero.
	Ratio *decimal.Decimal
}

func ComputeTurnover(revenue decimal.Decimal, startingStock, endingStock int) Turnover {
	avg := decimal.NewFromInt(int64(startingStock + endingStock)).Div(decimal.NewFromInt(2))
	t := Turnover{
		Revenue:          money.Round(revenue),
		StartingStock:    startingStock,
		EndingStock:      endingStock,
		AverageInventory: avg,
	}
	if avg.IsZero() {
		return t
	}
	ratio := revenue.DivRound(avg, 4)
	t.Ratio = &ratio
	return t
}

type ProductQuantity struct {
	ProductID uuid.UUID
	Quantity  int
}

// RankProducts orders totals by quantity descending, breaking ties by the lower
// product id, and keeps the first topN.
func RankProducts(totals []ProductQuantity, topN int) ([]ProductQuantity, error) {
	if topN <= 0 {
		return nil, ErrInvalidTopN
	}
	ranked := append([]ProductQuantity(nil), totals...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return bytes.Compare(ranked[i].ProductID[:], ranked[j].ProductID[:]) < 0
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

// ForecastDemand extrapolates the average daily quantity sold in past over the
// length of future. No sales yields zero.
func ForecastDemand(soldInPast int, past, future Window) decimal.Decimal {
	if soldInPast <= 0 {
		return decimal.Zero
	}
	daily := decimal.NewFromInt(int64(soldInPast)).Div(decimal.NewFromFloat(past.Days()))
	return money.Round(daily.Mul(decimal.NewFromFloat(future.Days())))
}
