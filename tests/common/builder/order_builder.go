//go:build unit || e2e

package builder

import (
	"time"

	"fulfillment-engine/internal/domain/order"
	reqdto "fulfillment-engine/internal/handler/dto/request"
	"fulfillment-engine/internal/usecase/commands"
	"fulfillment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

type OrderBuilder struct {
	CustomerID    uuid.UUID
	CustomerEmail string
	Items         []OrderItem
	Status        order.Status
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		CustomerID:    uuid.New(),
		CustomerEmail: "buyer@example.com",
		Items: []OrderItem{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{ProductID: uuid.New(), Quantity: 3, UnitPrice: decimal.RequireFromString("20.00")},
		},
		Status:    order.StatusPending,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	lines := make([]order.Line, 0, len(b.Items))
	for _, it := range b.Items {
		l, err := order.NewLine(it.ProductID, it.Quantity, it.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	email, err := order.NewEmail(b.CustomerEmail)
	if err != nil {
		return nil, err
	}
	return order.NewOrder(b.CustomerID, email, lines, b.CreatedAt)
}

// BuildCommand sends every line with an explicit unit price.
func (b *OrderBuilder) BuildCommand() commands.CreateOrderRequest {
	lines := make([]commands.OrderLineRequest, len(b.Items))
	for i, it := range b.Items {
		price := it.UnitPrice.String()
		lines[i] = commands.OrderLineRequest{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: &price}
	}
	return commands.CreateOrderRequest{
		CustomerID:    b.CustomerID,
		CustomerEmail: b.CustomerEmail,
		Lines:         lines,
	}
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	items := make([]reqdto.OrderItemRequest, len(b.Items))
	for i, it := range b.Items {
		price := it.UnitPrice.StringFixed(2)
		items[i] = reqdto.OrderItemRequest{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: &price}
	}
	return reqdto.CreateOrderRequest{
		CustomerID:    b.CustomerID,
		CustomerEmail: b.CustomerEmail,
		Items:         items,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	o, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	v := queries.NewOrderView(o)
	v.Status = b.Status.String()
	return v
}

// Fluent builder methods
func (b *OrderBuilder) WithCustomerEmail(email string) *OrderBuilder {
	b.CustomerEmail = email
	return b
}

func (b *OrderBuilder) WithItems(items ...OrderItem) *OrderBuilder {
	b.Items = items
	return b
}

func (b *OrderBuilder) WithItem(productID uuid.UUID, quantity int, unitPrice string) *OrderBuilder {
	b.Items = append(b.Items, OrderItem{ProductID: productID, Quantity: quantity, UnitPrice: decimal.RequireFromString(unitPrice)})
	return b
}

func (b *OrderBuilder) WithStatus(status order.Status) *OrderBuilder {
	b.Status = status
	return b
}

func (b *OrderBuilder) WithCreatedAt(createdAt time.Time) *OrderBuilder {
	b.CreatedAt = createdAt
	return b
}

// AsEightyDollarOrder is two lines of 10.00×2 and 20.00×3.
func (b *OrderBuilder) AsEightyDollarOrder(first, second uuid.UUID) *OrderBuilder {
	b.Items = []OrderItem{
		{ProductID: first, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		{ProductID: second, Quantity: 3, UnitPrice: decimal.RequireFromString("20.00")},
	}
	return b
}
