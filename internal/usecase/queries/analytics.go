package queries

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/analytics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnalyticsReadStore exposes aggregates over orders of any status and over the
// stock movement log. Windows are half-open [start, end).
type AnalyticsReadStore interface {
	RevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	CurrentTotalStock(ctx context.Context) (int, error)
	// StockDeltaSince sums every movement recorded at or after t.
	StockDeltaSince(ctx context.Context, t time.Time) (int, error)
	QuantitiesByProduct(ctx context.Context, start, end time.Time) ([]analytics.ProductQuantity, error)
	QuantitySold(ctx context.Context, productID uuid.UUID, start, end time.Time) (int, error)
}

type TurnoverView struct {
	WindowStart      time.Time        `json:"window_start"`
	WindowEnd        time.Time        `json:"window_end"`
	Revenue          decimal.Decimal  `json:"revenue"`
	StartingStock    int              `json:"starting_stock"`
	EndingStock      int              `json:"ending_stock"`
	AverageInventory decimal.Decimal  `json:"average_inventory"`
	Ratio            *decimal.Decimal `json:"ratio"`
}

type PopularProductView struct {
	Rank      int       `json:"rank"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type DemandForecastView struct {
	ProductID      uuid.UUID       `json:"product_id"`
	PastQuantity   int             `json:"past_quantity"`
	PastDays       float64         `json:"past_days"`
	FutureDays     float64         `json:"future_days"`
	PredictedUnits decimal.Decimal `json:"predicted_units"`
}

type AnalyticsQueries interface {
	InventoryTurnover(ctx context.Context, w analytics.Window) (*TurnoverView, error)
	MostPopularProducts(ctx context.Context, topN int, w analytics.Window) ([]*PopularProductView, error)
	PredictDemand(ctx context.Context, productID uuid.UUID, past, future analytics.Window) (*DemandForecastView, error)
}

type analyticsQueriesImpl struct {
	store AnalyticsReadStore
}

func NewAnalyticsQueries(store AnalyticsReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{store: store}
}

func (q *analyticsQueriesImpl) InventoryTurnover(ctx context.Context, w analytics.Window) (*TurnoverView, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	revenue, err := q.store.RevenueBetween(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	current, err := q.store.CurrentTotalStock(ctx)
	if err != nil {
		return nil, err
	}
	startStock, err := q.stockAt(ctx, current, w.Start)
	if err != nil {
		return nil, err
	}
	endStock, err := q.stockAt(ctx, current, w.End)
	if err != nil {
		return nil, err
	}

	t := analytics.ComputeTurnover(revenue, startStock, endStock)
	return &TurnoverView{
		WindowStart:      w.Start,
		WindowEnd:        w.End,
		Revenue:          t.Revenue,
		StartingStock:    t.StartingStock,
		EndingStock:      t.EndingStock,
		AverageInventory: t.AverageInventory,
		Ratio:            t.Ratio,
	}, nil
}

func (q *analyticsQueriesImpl) stockAt(ctx context.Context, current int, t time.Time) (int, error) {
	delta, err := q.store.StockDeltaSince(ctx, t)
	if err != nil {
		return 0, err
	}
	return current - delta, nil
}

func (q *analyticsQueriesImpl) MostPopularProducts(ctx context.Context, topN int, w analytics.Window) ([]*PopularProductView, error) {
	if topN <= 0 {
		return nil, analytics.ErrInvalidTopN
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	totals, err := q.store.QuantitiesByProduct(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	ranked, err := analytics.RankProducts(totals, topN)
	if err != nil {
		return nil, err
	}
	out := make([]*PopularProductView, 0, len(ranked))
	for i, r := range ranked {
		out = append(out, &PopularProductView{Rank: i + 1, ProductID: r.ProductID, Quantity: r.Quantity})
	}
	return out, nil
}

func (q *analyticsQueriesImpl) PredictDemand(ctx context.Context, productID uuid.UUID, past, future analytics.Window) (*DemandForecastView, error) {
	if err := past.Validate(); err != nil {
		return nil, err
	}
	if err := future.Validate(); err != nil {
		return nil, err
	}
	sold, err := q.store.QuantitySold(ctx, productID, past.Start, past.End)
	if err != nil {
		return nil, err
	}
	return &DemandForecastView{
		ProductID:      productID,
		PastQuantity:   sold,
		PastDays:       past.Days(),
		FutureDays:     future.Days(),
		PredictedUnits: analytics.ForecastDemand(sold, past, future),
	}, nil
}
