package response

import (
	"time"

	"fulfillment-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type TurnoverResponse struct {
	WindowStart      time.Time        `json:"window_start"`
	WindowEnd        time.Time        `json:"window_end"`
	Revenue          decimal.Decimal  `json:"revenue"`
	StartingStock    int              `json:"starting_stock"`
	EndingStock      int              `json:"ending_stock"`
	AverageInventory decimal.Decimal  `json:"average_inventory"`
	Ratio            *decimal.Decimal `json:"turnover_ratio"`
}

type PopularProductResponse struct {
	Rank      int    `json:"rank"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"total_quantity"`
}

type DemandForecastResponse struct {
	ProductID      string          `json:"product_id"`
	PastQuantity   int             `json:"past_quantity"`
	PastDays       float64         `json:"past_days"`
	FutureDays     float64         `json:"future_days"`
	PredictedUnits decimal.Decimal `json:"predicted_units"`
}

// Id fields are strings on the wire.
var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{uuidToString},
}

func FromTurnoverView(v *queries.TurnoverView) (*TurnoverResponse, error) {
	var res TurnoverResponse
	if err := copier.CopyWithOption(&res, v, copyOpts); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromPopularProducts(views []*queries.PopularProductView) ([]*PopularProductResponse, error) {
	res := make([]*PopularProductResponse, 0, len(views))
	if err := copier.CopyWithOption(&res, views, copyOpts); err != nil {
		return nil, err
	}
	return res, nil
}

func FromDemandForecastView(v *queries.DemandForecastView) (*DemandForecastResponse, error) {
	var res DemandForecastResponse
	if err := copier.CopyWithOption(&res, v, copyOpts); err != nil {
		return nil, err
	}
	return &res, nil
}
