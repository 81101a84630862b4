//go:build e2e

package e2e

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	resdto "fulfillment-engine/internal/handler/dto/response"
	"fulfillment-engine/tests/common/builder"
	"fulfillment-engine/tests/common/dbtest"
	"fulfillment-engine/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type OrderFlowTestSuite struct {
	SharedSuite
}

func TestOrderFlowSuite(t *testing.T) {
	suite.Run(t, new(OrderFlowTestSuite))
}

func (s *OrderFlowTestSuite) createOrder(first, second uuid.UUID) resdto.OrderResponse {
	body := builder.NewOrderBuilder().AsEightyDollarOrder(first, second).BuildCreateRequestDTO()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", body)

	var created resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return created
}

func (s *OrderFlowTestSuite) TestOrderLifecycle() {
	mug := dbtest.CreateTestProduct(s.T(), s.DB, "Mug", "10.00")
	teapot := dbtest.CreateTestProduct(s.T(), s.DB, "Teapot", "20.00")

	created := s.createOrder(mug, teapot)
	s.Equal("80.00", created.TotalAmount)
	s.Equal("pending", created.Status)
	s.Len(created.Items, 2)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/"+created.ID, nil)
	var fetched resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &fetched)
	s.Equal(created.ID, fetched.ID)
	s.Equal("80.00", fetched.TotalAmount)

	for _, next := range []string{"processing", "shipped", "delivered"} {
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/orders/"+created.ID+"/status",
			map[string]string{"status": next})
		var updated resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		s.Equal(next, updated.Status)
	}

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/orders/"+created.ID+"/status",
		map[string]string{"status": "processing"})
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "invalid order transition from 'delivered' to 'processing'")

	s.Equal([]string{
		"Order Created",
		"Order Status Updated",
		"Order Status Updated",
		"Order Status Updated",
	}, s.Outbox.Subjects())
	for _, m := range s.Outbox.Sent() {
		s.Equal("buyer@example.com", m.Recipient)
	}
}

func (s *OrderFlowTestSuite) TestSkippedTransitionLeavesOrderUntouched() {
	mug := dbtest.CreateTestProduct(s.T(), s.DB, "Mug", "10.00")
	teapot := dbtest.CreateTestProduct(s.T(), s.DB, "Teapot", "20.00")
	created := s.createOrder(mug, teapot)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/orders/"+created.ID+"/status",
		map[string]string{"status": "delivered"})
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "invalid order transition")
	httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "invalid_transition")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/"+created.ID, nil)
	var fetched resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &fetched)
	s.Equal("pending", fetched.Status)
}

func (s *OrderFlowTestSuite) TestCatalogPriceAppliesWhenLineHasNoPrice() {
	lamp := dbtest.CreateTestProduct(s.T(), s.DB, "Lamp", "40.00")

	now := time.Now().UTC()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/promotions", map[string]any{
		"product_id": lamp,
		"discount":   "25",
		"starts_at":  now.Add(-time.Hour),
		"ends_at":    now.Add(time.Hour),
	})
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/products/"+lamp.String()+"/price", nil)
	var price resdto.PriceResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &price)
	s.Equal("30.00", price.EffectivePrice)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", map[string]any{
		"customer_id":    uuid.New(),
		"customer_email": "lamp@example.com",
		"items": []map[string]any{
			{"product_id": lamp, "quantity": 2},
		},
	})
	var created resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	s.Equal("60.00", created.TotalAmount)
	s.Equal("30.00", created.Items[0].UnitPrice)
}

func (s *OrderFlowTestSuite) TestUnknownProductRollsBackOrder() {
	mug := dbtest.CreateTestProduct(s.T(), s.DB, "Mug", "10.00")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", map[string]any{
		"customer_id":    uuid.New(),
		"customer_email": "buyer@example.com",
		"items": []map[string]any{
			{"product_id": mug, "quantity": 1},
			{"product_id": uuid.New(), "quantity": 1},
		},
	})
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "unknown product")

	s.Zero(dbtest.CountRows(s.T(), s.DB, "orders"))
	s.Zero(dbtest.CountRows(s.T(), s.DB, "order_lines"))
	s.Empty(s.Outbox.Sent())
}

func (s *OrderFlowTestSuite) TestInvoices() {
	mug := dbtest.CreateTestProduct(s.T(), s.DB, "Mug", "10.00")
	teapot := dbtest.CreateTestProduct(s.T(), s.DB, "Teapot", "20.00")
	created := s.createOrder(mug, teapot)

	for range 2 {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders/"+created.ID+"/invoices", nil)
		var inv resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &inv)
		s.Equal("80.00", inv.Amount)
		s.Equal(created.ID, inv.OrderID)
	}

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/"+created.ID+"/invoices", nil)
	var invoices []resdto.InvoiceResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &invoices)
	s.Len(invoices, 2)
	s.Contains(s.Outbox.Subjects(), "Invoice Generated")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders/"+uuid.NewString()+"/invoices", nil)
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
}

func (s *OrderFlowTestSuite) TestListOrdersForCustomer() {
	mug := dbtest.CreateTestProduct(s.T(), s.DB, "Mug", "10.00")
	teapot := dbtest.CreateTestProduct(s.T(), s.DB, "Teapot", "20.00")
	customer := uuid.New()

	mine := map[string]bool{}
	for range 3 {
		body := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.CustomerID = customer }).
			AsEightyDollarOrder(mug, teapot).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", body)
		var created resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		mine[created.ID] = true
	}
	s.createOrder(mug, teapot)

	type page struct {
		Orders     []resdto.OrderResponse `json:"orders"`
		NextCursor string                 `json:"next_cursor"`
	}
	seen := map[string]bool{}
	path := "/api/orders?limit=2&customer_id=" + customer.String()
	var first page
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
	s.Require().Len(first.Orders, 2)
	s.NotEmpty(first.NextCursor)
	for _, o := range first.Orders {
		s.Len(o.Items, 2, "lines are loaded for every listed order")
		seen[o.ID] = true
	}

	var second page
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path+"&after="+url.QueryEscape(first.NextCursor), nil)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
	s.Require().Len(second.Orders, 1)
	s.Empty(second.NextCursor)
	seen[second.Orders[0].ID] = true

	s.Equal(mine, seen)

	var all page
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders?status=pending", nil)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &all)
	s.Len(all.Orders, 4)
}
