//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment-engine/internal/handler/httperr"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   httperr.Code
	}{
		{"validation", errs.Validation("bad input"), http.StatusBadRequest, httperr.CodeValidation},
		{"wrapped validation", errs.Wrap(errs.Validation("bad input"), "create order"), http.StatusBadRequest, httperr.CodeValidation},
		{"not found", infra.NotFound("order not found"), http.StatusNotFound, httperr.CodeNotFound},
		{"duplicate key", infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey), http.StatusBadRequest, httperr.CodeValidation},
		{"invalid transition", errs.NewInvalidTransition("order", "delivered", "pending"), http.StatusConflict, httperr.CodeInvalidTransition},
		{"invalid quantity", errs.Mark(errors.New("insufficient stock"), errs.ErrInvalidQuantity), http.StatusConflict, httperr.CodeInvalidQuantity},
		{"coupon invalid", errs.Mark(errors.New("coupon has expired"), errs.ErrCouponInvalid), http.StatusUnprocessableEntity, httperr.CodeCouponInvalid},
		{"persistence", infra.WrapRepoErr("write failed", errors.New("conn reset")), http.StatusInternalServerError, httperr.CodeInternal},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, httperr.CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := httperr.Classify(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantStatus, httperr.StatusOf(tc.err))
		})
	}
}

func TestAbort_HidesServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.Abort(c, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"internal","message":"Internal server error"}}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestAbort_ClientErrorsCarryMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.Abort(c, errs.Validation("line quantity must be a positive integer"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"code":"validation_failed","message":"line quantity must be a positive integer"}}`, w.Body.String())
}

func TestBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.BadRequest(c, errors.New("invalid UUID length: 3"), "Invalid id")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"code":"validation_failed","message":"Invalid id"}}`, w.Body.String())
	if assert.Len(t, c.Errors, 1) {
		assert.EqualError(t, c.Errors[0].Err, "invalid UUID length: 3")
	}
}
