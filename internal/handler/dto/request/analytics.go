package request

import (
	"time"

	"fulfillment-engine/internal/domain/analytics"
)

type WindowQuery struct {
	Start time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	End   time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
}

func (q WindowQuery) Window() analytics.Window {
	return analytics.Window{Start: q.Start.UTC(), End: q.End.UTC()}
}

type PopularProductsQuery struct {
	WindowQuery
	TopN int `form:"top_n,default=10"`
}

type DemandQuery struct {
	ProductID   string    `form:"product_id" binding:"required,uuid"`
	PastStart   time.Time `form:"past_start" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	PastEnd     time.Time `form:"past_end" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	FutureStart time.Time `form:"future_start" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	FutureEnd   time.Time `form:"future_end" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
}

func (q DemandQuery) Windows() (past, future analytics.Window) {
	return analytics.Window{Start: q.PastStart.UTC(), End: q.PastEnd.UTC()},
		analytics.Window{Start: q.FutureStart.UTC(), End: q.FutureEnd.UTC()}
}
