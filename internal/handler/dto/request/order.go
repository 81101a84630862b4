package request

import (
	"fulfillment-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
	UnitPrice *string   `json:"unit_price"`
}

type CreateOrderRequest struct {
	CustomerID    uuid.UUID          `json:"customer_id" binding:"required"`
	CustomerEmail string             `json:"customer_email" binding:"required"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *CreateOrderRequest) ToCommand() commands.CreateOrderRequest {
	lines := make([]commands.OrderLineRequest, len(r.Items))
	for i, it := range r.Items {
		lines[i] = commands.OrderLineRequest{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return commands.CreateOrderRequest{
		CustomerID:    r.CustomerID,
		CustomerEmail: r.CustomerEmail,
		Lines:         lines,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListOrdersQuery struct {
	ListQuery
	Status     string `form:"status"`
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
}
