package queries

import (
	"time"

	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/domain/product"
	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/domain/returns"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderLineView struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	CustomerEmail string          `json:"customer_email"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	Lines         []OrderLineView `json:"lines"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type InvoiceView struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	GeneratedAt time.Time       `json:"generated_at"`
}

type InventoryRecordView struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Location  string    `json:"location"`
	Stock     int       `json:"stock"`
	Threshold int       `json:"threshold"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AlertView struct {
	ID        uuid.UUID `json:"id"`
	RecordID  uuid.UUID `json:"record_id"`
	ProductID uuid.UUID `json:"product_id"`
	Location  string    `json:"location"`
	Stock     int       `json:"stock"`
	Threshold int       `json:"threshold"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductView struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	CreatedAt time.Time       `json:"created_at"`
}

type PromotionView struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Discount  decimal.Decimal `json:"discount"`
	StartsAt  time.Time       `json:"starts_at"`
	EndsAt    time.Time       `json:"ends_at"`
	CreatedAt time.Time       `json:"created_at"`
}

type ReturnRequestView struct {
	ID          uuid.UUID  `json:"id"`
	OrderID     uuid.UUID  `json:"order_id"`
	Reason      string     `json:"reason"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

func NewOrderView(o *order.Order) *OrderView {
	lines := o.Lines()
	v := &OrderView{
		ID:            o.ID(),
		CustomerID:    o.CustomerID(),
		CustomerEmail: o.CustomerEmail().String(),
		Status:        o.Status().String(),
		Total:         o.Total(),
		Lines:         make([]OrderLineView, 0, len(lines)),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
	for _, l := range lines {
		v.Lines = append(v.Lines, OrderLineView{
			ProductID: l.ProductID(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice(),
			Subtotal:  l.Subtotal(),
		})
	}
	return v
}

func NewInvoiceView(inv *order.Invoice) *InvoiceView {
	return &InvoiceView{
		ID:          inv.ID(),
		OrderID:     inv.OrderID(),
		Amount:      inv.Amount(),
		GeneratedAt: inv.GeneratedAt(),
	}
}

func NewInventoryRecordView(r *inventory.Record) *InventoryRecordView {
	return &InventoryRecordView{
		ID:        r.ID(),
		ProductID: r.ProductID(),
		Location:  r.Location(),
		Stock:     r.Stock(),
		Threshold: r.Threshold(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func NewAlertView(a *inventory.Alert) *AlertView {
	return &AlertView{
		ID:        a.ID(),
		RecordID:  a.RecordID(),
		ProductID: a.ProductID(),
		Location:  a.Location(),
		Stock:     a.Stock(),
		Threshold: a.Threshold(),
		Message:   a.Message(),
		CreatedAt: a.CreatedAt(),
	}
}

func NewProductView(p *product.Product) *ProductView {
	return &ProductView{
		ID:        p.ID(),
		Name:      p.Name(),
		BasePrice: p.BasePrice(),
		CreatedAt: p.CreatedAt(),
	}
}

func NewPromotionView(p *promotion.Promotion) *PromotionView {
	return &PromotionView{
		ID:        p.ID(),
		ProductID: p.ProductID(),
		Discount:  p.Discount(),
		StartsAt:  p.StartsAt(),
		EndsAt:    p.EndsAt(),
		CreatedAt: p.CreatedAt(),
	}
}

func NewReturnRequestView(r *returns.Request) *ReturnRequestView {
	return &ReturnRequestView{
		ID:          r.ID(),
		OrderID:     r.OrderID(),
		Reason:      r.Reason(),
		Type:        string(r.Type()),
		Status:      string(r.Status()),
		CreatedAt:   r.CreatedAt(),
		ProcessedAt: r.ProcessedAt(),
	}
}

func (v *PromotionView) toDomain() *promotion.Promotion {
	return promotion.ReconstructPromotion(v.ID, v.ProductID, v.Discount, v.StartsAt, v.EndsAt, v.CreatedAt)
}
