package api

import (
	"net/http"

	reqdto "fulfillment-engine/internal/handler/dto/request"
	resdto "fulfillment-engine/internal/handler/dto/response"
	"fulfillment-engine/internal/handler/httperr"
	"fulfillment-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnalyticsHandler struct {
	q queries.AnalyticsQueries
}

func NewAnalyticsHandler(q queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{q: q}
}

// @Summary Inventory turnover
// @Description Revenue over average inventory for [start, end); ratio is null when average inventory is zero
// @Tags analytics
// @Produce json
// @Param start query string true "RFC 3339 window start"
// @Param end query string true "RFC 3339 window end"
// @Success 200 {object} resdto.TurnoverResponse
// @Failure 400 {object} httperr.Response
// @Router /api/analytics/turnover [get]
func (h *AnalyticsHandler) Turnover(c *gin.Context) {
	var q reqdto.WindowQuery
	if !bindQuery(c, &q) {
		return
	}
	view, err := h.q.InventoryTurnover(c.Request.Context(), q.Window())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromTurnoverView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Most popular products
// @Tags analytics
// @Produce json
// @Param start query string true "RFC 3339 window start"
// @Param end query string true "RFC 3339 window end"
// @Param top_n query int false "Number of products (default 10)"
// @Success 200 {array} resdto.PopularProductResponse
// @Failure 400 {object} httperr.Response
// @Router /api/analytics/popular-products [get]
func (h *AnalyticsHandler) PopularProducts(c *gin.Context) {
	var q reqdto.PopularProductsQuery
	if !bindQuery(c, &q) {
		return
	}
	views, err := h.q.MostPopularProducts(c.Request.Context(), q.TopN, q.Window())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPopularProducts(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Demand forecast
// @Description Linear projection of the past window's sales rate onto the future window
// @Tags analytics
// @Produce json
// @Param product_id query string true "Product ID"
// @Param past_start query string true "RFC 3339"
// @Param past_end query string true "RFC 3339"
// @Param future_start query string true "RFC 3339"
// @Param future_end query string true "RFC 3339"
// @Success 200 {object} resdto.DemandForecastResponse
// @Failure 400 {object} httperr.Response
// @Router /api/analytics/demand [get]
func (h *AnalyticsHandler) Demand(c *gin.Context) {
	var q reqdto.DemandQuery
	if !bindQuery(c, &q) {
		return
	}
	productID, err := uuid.Parse(q.ProductID)
	if err != nil {
		httperr.BadRequest(c, err, "Invalid product_id")
		return
	}
	past, future := q.Windows()
	view, err := h.q.PredictDemand(c.Request.Context(), productID, past, future)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDemandForecastView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
