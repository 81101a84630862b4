package shared

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/domain/product"
	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/domain/returns"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction. Everything fn writes commits together
	// or not at all; hooks registered through Tx.AfterCommit run only after a
	// successful commit.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Products() ProductRepository
	Inventory() InventoryRepository
	Alerts() AlertRepository
	Orders() OrderRepository
	Invoices() InvoiceRepository
	Promotions() PromotionRepository
	Coupons() CouponRepository
	Returns() ReturnRepository
	// AfterCommit queues fn for the current attempt. Retried attempts start
	// with an empty queue.
	AfterCommit(fn func(ctx context.Context))
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, r *inventory.Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Record, error)
	// FirstForProduct returns the product's record with the lowest id.
	FirstForProduct(ctx context.Context, productID uuid.UUID) (*inventory.Record, error)
	// Adjust applies delta as one conditional update and returns the record as
	// stored afterwards. It never lets stock go below zero.
	Adjust(ctx context.Context, id uuid.UUID, delta int, now time.Time) (*inventory.Record, error)
	AppendMovement(ctx context.Context, m inventory.Movement) error
}

type AlertRepository interface {
	Create(ctx context.Context, a *inventory.Alert) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	// FindByIDForUpdate locks the order row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, o *order.Order) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *order.Invoice) error
}

type PromotionRepository interface {
	Create(ctx context.Context, p *promotion.Promotion) error
	FindCovering(ctx context.Context, productID uuid.UUID, at time.Time) ([]*promotion.Promotion, error)
}

type CouponRepository interface {
	Create(ctx context.Context, c *promotion.Coupon) error
	// Redeem increments the use count in one conditional update and returns
	// the coupon after the increment.
	Redeem(ctx context.Context, code string, now time.Time) (*promotion.Coupon, error)
}

type ReturnRepository interface {
	Create(ctx context.Context, r *returns.Request) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*returns.Request, error)
	UpdateStatus(ctx context.Context, r *returns.Request) error
}
