package response

import (
	"time"

	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/pkg/money"
	"fulfillment-engine/internal/usecase/queries"
)

type OrderLineResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id"`
	CustomerEmail string              `json:"customer_email"`
	Status        string              `json:"status"`
	TotalAmount   string              `json:"total_amount"`
	Items         []OrderLineResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromOrder(o *order.Order) *OrderResponse {
	return FromOrderView(queries.NewOrderView(o))
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		items[i] = OrderLineResponse{
			ProductID: l.ProductID.String(),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(money.Scale),
			Subtotal:  l.Subtotal.StringFixed(money.Scale),
		}
	}
	return &OrderResponse{
		ID:            v.ID.String(),
		CustomerID:    v.CustomerID.String(),
		CustomerEmail: v.CustomerEmail,
		Status:        v.Status,
		TotalAmount:   v.Total.StringFixed(money.Scale),
		Items:         items,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromOrderList(views []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		res[i] = FromOrderView(v)
	}
	return res
}

type InvoiceResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Amount      string    `json:"amount"`
	GeneratedAt time.Time `json:"generated_at"`
}

func FromInvoiceView(v *queries.InvoiceView) *InvoiceResponse {
	return &InvoiceResponse{
		ID:          v.ID.String(),
		OrderID:     v.OrderID.String(),
		Amount:      v.Amount.StringFixed(money.Scale),
		GeneratedAt: v.GeneratedAt,
	}
}

func FromInvoice(inv *order.Invoice) *InvoiceResponse {
	return FromInvoiceView(queries.NewInvoiceView(inv))
}

func FromInvoiceList(views []*queries.InvoiceView) []*InvoiceResponse {
	res := make([]*InvoiceResponse, len(views))
	for i, v := range views {
		res[i] = FromInvoiceView(v)
	}
	return res
}
