package api

import (
	"net/http"

	reqdto "fulfillment-engine/internal/handler/dto/request"
	resdto "fulfillment-engine/internal/handler/dto/response"
	"fulfillment-engine/internal/handler/httperr"
	"fulfillment-engine/internal/usecase/commands"
	"fulfillment-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds    commands.CatalogCommands
	pricing commands.PricingCommands
	q       queries.PricingQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, pricing commands.PricingCommands, q queries.PricingQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, pricing: pricing, q: q}
}

// @Summary Create product
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /api/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.cmds.CreateProduct(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProduct(p))
}

// @Summary List products
// @Description Products newest first, keyset paginated
// @Tags catalog
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var q reqdto.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, next, err := h.q.ListProducts(c.Request.Context(), cursorFromQuery(q.After), queries.ValidateLimit(q.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("products", resdto.FromProductList(items), next))
}

// @Summary Get product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetProduct(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Effective price
// @Description Base price after the promotion active at the given instant
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Param at query string false "RFC 3339 instant (default now)"
// @Success 200 {object} resdto.PriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/price [get]
func (h *CatalogHandler) Price(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.PriceQuery
	if !bindQuery(c, &q) {
		return
	}
	at, err := parseOptionalTime(q.At)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.EffectivePrice(c.Request.Context(), id, at)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceView(view))
}

// @Summary Active promotion
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Param at query string false "RFC 3339 instant (default now)"
// @Success 200 {object} resdto.PromotionResponse
// @Success 204 "No active promotion"
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/promotion [get]
func (h *CatalogHandler) ActivePromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.PriceQuery
	if !bindQuery(c, &q) {
		return
	}
	at, err := parseOptionalTime(q.At)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.ActivePromotion(c.Request.Context(), id, at)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if view == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionView(view))
}

// @Summary Create promotion
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/promotions [post]
func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.pricing.CreatePromotion(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromotion(p))
}

// @Summary Create coupon
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCouponRequest true "Coupon"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Router /api/coupons [post]
func (h *CatalogHandler) CreateCoupon(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if !bindJSON(c, &req) {
		return
	}
	cp, err := h.pricing.CreateCoupon(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCoupon(cp))
}

// @Summary Apply coupon
// @Description Redeem one use of a coupon against a price
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Price and code"
// @Success 200 {object} resdto.ApplyCouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/coupons/apply [post]
func (h *CatalogHandler) ApplyCoupon(c *gin.Context) {
	var req reqdto.ApplyCouponRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.pricing.ApplyCoupon(c.Request.Context(), req.Price, req.Code)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApplyCouponResult(res))
}
