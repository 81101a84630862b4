package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code classifies an error response for API clients.
type Code string

const (
	CodeValidation        Code = "validation_failed"
	CodeNotFound          Code = "not_found"
	CodeInvalidTransition Code = "invalid_transition"
	CodeInvalidQuantity   Code = "invalid_quantity"
	CodeCouponInvalid     Code = "coupon_invalid"
	CodeInternal          Code = "internal"
)

const internalMessage = "Internal server error"

type ErrorBody struct {
	Code    Code   `json:"code,omitempty"`
	Message string `json:"message"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

func NewResponse(status int, code Code, msg string) Response {
	return Response{Status: status, Error: ErrorBody{Code: code, Message: msg}}
}

// Internal is the only body a client ever sees for a 5xx.
func Internal() Response {
	return NewResponse(http.StatusInternalServerError, CodeInternal, internalMessage)
}

// AbortWithError keeps err on the context for the request logger and writes
// resp as the body.
func AbortWithError(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// BadRequest rejects input that never reached a use case: malformed bodies,
// path ids and query strings.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, err, NewResponse(http.StatusBadRequest, CodeValidation, msg))
}
