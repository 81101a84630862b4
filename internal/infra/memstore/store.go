package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"

	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/domain/product"
	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/domain/returns"
	"fulfillment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps every aggregate in process. Write transactions run one at a time
// against a private copy of the state that replaces the shared state only on
// success, so readers never see a partial write.
type Store struct {
	mu   sync.RWMutex
	data *state
}

type state struct {
	products   map[uuid.UUID]product.Product
	records    map[uuid.UUID]inventory.Record
	movements  []inventory.Movement
	alerts     []inventory.Alert
	orders     map[uuid.UUID]order.Order
	invoices   []order.Invoice
	promotions []promotion.Promotion
	coupons    map[string]promotion.Coupon
	returns    map[uuid.UUID]returns.Request
}

func New() *Store {
	return &Store{data: &state{
		products: map[uuid.UUID]product.Product{},
		records:  map[uuid.UUID]inventory.Record{},
		orders:   map[uuid.UUID]order.Order{},
		coupons:  map[string]promotion.Coupon{},
		returns:  map[uuid.UUID]returns.Request{},
	}}
}

// clone copies the maps and clips the append-only slices so that appends in
// the copy never write into the original backing arrays.
func (s *state) clone() *state {
	return &state{
		products:   maps.Clone(s.products),
		records:    maps.Clone(s.records),
		movements:  slices.Clip(s.movements),
		alerts:     slices.Clip(s.alerts),
		orders:     maps.Clone(s.orders),
		invoices:   slices.Clip(s.invoices),
		promotions: slices.Clip(s.promotions),
		coupons:    maps.Clone(s.coupons),
		returns:    maps.Clone(s.returns),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := s.commit(ctx, fn)
	if err != nil {
		return err
	}
	tx.hooks.Run(ctx)
	return nil
}

// commit holds the write lock only while fn runs against the copy. A panic in
// fn discards the copy and still releases the lock.
func (s *Store) commit(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (*memTx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{data: s.data.clone()}
	if err := fn(ctx, tx); err != nil {
		return nil, err
	}
	s.data = tx.data
	return tx, nil
}

func (s *Store) read() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

type memTx struct {
	data  *state
	hooks shared.CommitHooks
}

func (t *memTx) Products() shared.ProductRepository     { return productRepo{t.data} }
func (t *memTx) Inventory() shared.InventoryRepository  { return inventoryRepo{t.data} }
func (t *memTx) Alerts() shared.AlertRepository         { return alertRepo{t.data} }
func (t *memTx) Orders() shared.OrderRepository         { return orderRepo{t.data} }
func (t *memTx) Invoices() shared.InvoiceRepository     { return invoiceRepo{t.data} }
func (t *memTx) Promotions() shared.PromotionRepository { return promotionRepo{t.data} }
func (t *memTx) Coupons() shared.CouponRepository       { return couponRepo{t.data} }
func (t *memTx) Returns() shared.ReturnRepository       { return returnRepo{t.data} }

func (t *memTx) AfterCommit(fn func(ctx context.Context)) {
	t.hooks.Add(fn)
}
