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

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Create an order; line prices default to the current effective catalog price
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	o, err := h.cmds.CreateOrder(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrder(o))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description Orders newest first, keyset paginated
// @Tags orders
// @Produce json
// @Param status query string false "Filter by status"
// @Param customer_id query string false "Filter by customer"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var q reqdto.ListOrdersQuery
	if !bindQuery(c, &q) {
		return
	}
	items, next, err := h.q.List(c.Request.Context(), q.Status, reqdto.OptionalUUID(q.CustomerID), cursorFromQuery(q.After), queries.ValidateLimit(q.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("orders", resdto.FromOrderList(items), next))
}

// @Summary Update order status
// @Description Move an order along pending → processing → shipped → delivered
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	o, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrder(o))
}

// @Summary Generate invoice
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id}/invoices [post]
func (h *OrderHandler) GenerateInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	inv, err := h.cmds.GenerateInvoice(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInvoice(inv))
}

// @Summary List invoices
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {array} resdto.InvoiceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id}/invoices [get]
func (h *OrderHandler) ListInvoices(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListInvoices(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceList(views))
}
