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

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary Create inventory record
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.CreateInventoryRecordRequest true "Inventory record"
// @Success 201 {object} resdto.InventoryRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateInventoryRecordRequest
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.cmds.CreateRecord(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRecord(rec))
}

// @Summary List inventory records
// @Description Records newest first, keyset paginated
// @Tags inventory
// @Produce json
// @Param product_id query string false "Filter by product"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /api/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var q reqdto.ListRecordsQuery
	if !bindQuery(c, &q) {
		return
	}
	items, next, err := h.q.ListRecords(c.Request.Context(), reqdto.OptionalUUID(q.ProductID), cursorFromQuery(q.After), queries.ValidateLimit(q.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("records", resdto.FromRecordList(items), next))
}

// @Summary Get inventory record
// @Tags inventory
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.InventoryRecordResponse
// @Failure 404 {object} httperr.Response
// @Router /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetRecord(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecordView(view))
}

// @Summary Adjust stock
// @Description Apply a signed delta atomically; stock never goes below zero
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body reqdto.AdjustStockRequest true "Delta"
// @Success 200 {object} resdto.AdjustmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/inventory/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.AdjustStockRequest
	if !bindJSON(c, &req) {
		return
	}
	adj, err := h.cmds.AdjustStock(c.Request.Context(), id, *req.Delta)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdjustment(adj))
}

// @Summary Low stock records
// @Tags inventory
// @Produce json
// @Success 200 {array} resdto.InventoryRecordResponse
// @Router /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *gin.Context) {
	views, err := h.q.GetLowStock(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecordList(views))
}

// @Summary List alerts
// @Description Low-stock alerts, newest first, keyset paginated
// @Tags inventory
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /api/alerts [get]
func (h *InventoryHandler) ListAlerts(c *gin.Context) {
	var q reqdto.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, next, err := h.q.ListAlerts(c.Request.Context(), cursorFromQuery(q.After), queries.ValidateLimit(q.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("alerts", resdto.FromAlertList(items), next))
}
