package httperr

import (
	"errors"
	"net/http"

	"fulfillment-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Classify maps the shared error taxonomy onto an HTTP status and a code.
func Classify(err error) (int, Code) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, CodeInvalidTransition
	case errors.Is(err, errs.ErrInvalidQuantity):
		return http.StatusConflict, CodeInvalidQuantity
	case errors.Is(err, errs.ErrCouponInvalid):
		return http.StatusUnprocessableEntity, CodeCouponInvalid
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func StatusOf(err error) int {
	status, _ := Classify(err)
	return status
}

// Abort responds with the classified status. Client errors carry the error
// text; server errors only a generic message.
func Abort(c *gin.Context, err error) {
	status, code := Classify(err)
	if status >= http.StatusInternalServerError {
		AbortWithError(c, err, Internal())
		return
	}
	AbortWithError(c, err, NewResponse(status, code, err.Error()))
}
