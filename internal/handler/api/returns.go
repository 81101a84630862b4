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

type ReturnHandler struct {
	cmds commands.ReturnCommands
	q    queries.ReturnQueries
}

func NewReturnHandler(cmds commands.ReturnCommands, q queries.ReturnQueries) *ReturnHandler {
	return &ReturnHandler{cmds: cmds, q: q}
}

// @Summary Create return request
// @Tags returns
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReturnRequest true "Return request"
// @Success 201 {object} resdto.ReturnResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/returns [post]
func (h *ReturnHandler) Create(c *gin.Context) {
	var req reqdto.CreateReturnRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReturn(r))
}

// @Summary Get return request
// @Tags returns
// @Produce json
// @Param id path string true "Return request ID"
// @Success 200 {object} resdto.ReturnResponse
// @Failure 404 {object} httperr.Response
// @Router /api/returns/{id} [get]
func (h *ReturnHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReturnView(view))
}

// @Summary List return requests
// @Tags returns
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /api/returns [get]
func (h *ReturnHandler) List(c *gin.Context) {
	var q reqdto.ListReturnsQuery
	if !bindQuery(c, &q) {
		return
	}
	items, next, err := h.q.List(c.Request.Context(), q.Status, cursorFromQuery(q.After), queries.ValidateLimit(q.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("returns", resdto.FromReturnList(items), next))
}

// @Summary Process return request
// @Description Approve or deny a pending request; approval refunds or restocks
// @Tags returns
// @Accept json
// @Produce json
// @Param id path string true "Return request ID"
// @Param request body reqdto.ProcessReturnRequest true "Action"
// @Success 200 {object} resdto.ReturnResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/returns/{id}/process [post]
func (h *ReturnHandler) Process(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ProcessReturnRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.Process(c.Request.Context(), id, req.Action)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReturn(r))
}
