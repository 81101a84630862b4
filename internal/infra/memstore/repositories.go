package memstore

import (
	"bytes"
	"context"
	"time"

	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/domain/product"
	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/domain/returns"
	"fulfillment-engine/internal/infra"

	"github.com/google/uuid"
)

type productRepo struct{ s *state }

func (r productRepo) Create(_ context.Context, p *product.Product) error {
	if _, ok := r.s.products[p.ID()]; ok {
		return infra.WrapRepoErr("product already exists", nil, infra.KindDuplicateKey)
	}
	r.s.products[p.ID()] = *p
	return nil
}

func (r productRepo) FindByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, infra.NotFound("product not found")
	}
	return &p, nil
}

type inventoryRepo struct{ s *state }

func (r inventoryRepo) Create(_ context.Context, rec *inventory.Record) error {
	for _, existing := range r.s.records {
		if existing.ProductID() == rec.ProductID() && existing.Location() == rec.Location() {
			return infra.WrapRepoErr("inventory record already exists for product and location", nil, infra.KindDuplicateKey)
		}
	}
	r.s.records[rec.ID()] = *rec
	return nil
}

func (r inventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Record, error) {
	rec, ok := r.s.records[id]
	if !ok {
		return nil, infra.NotFound("inventory record not found")
	}
	return &rec, nil
}

func (r inventoryRepo) FirstForProduct(_ context.Context, productID uuid.UUID) (*inventory.Record, error) {
	var first *inventory.Record
	for _, rec := range r.s.records {
		if rec.ProductID() != productID {
			continue
		}
		if first == nil || lessID(rec.ID(), first.ID()) {
			c := rec
			first = &c
		}
	}
	if first == nil {
		return nil, infra.NotFound("no inventory record for product")
	}
	return first, nil
}

func (r inventoryRepo) Adjust(_ context.Context, id uuid.UUID, delta int, now time.Time) (*inventory.Record, error) {
	rec, ok := r.s.records[id]
	if !ok {
		return nil, infra.NotFound("inventory record not found")
	}
	if err := rec.Adjust(delta, now); err != nil {
		return nil, err
	}
	r.s.records[id] = rec
	return &rec, nil
}

func (r inventoryRepo) AppendMovement(_ context.Context, m inventory.Movement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}

type alertRepo struct{ s *state }

func (r alertRepo) Create(_ context.Context, a *inventory.Alert) error {
	r.s.alerts = append(r.s.alerts, *a)
	return nil
}

type orderRepo struct{ s *state }

func (r orderRepo) Create(_ context.Context, o *order.Order) error {
	for _, l := range o.Lines() {
		if _, ok := r.s.products[l.ProductID()]; !ok {
			return infra.WrapRepoErr("order line references unknown product", nil, infra.KindForeignKeyViolated)
		}
	}
	r.s.orders[o.ID()] = *o
	return nil
}

func (r orderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, infra.NotFound("order not found")
	}
	return &o, nil
}

// Write transactions are already serialised, so no extra lock is taken.
func (r orderRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.FindByID(ctx, id)
}

func (r orderRepo) UpdateStatus(_ context.Context, o *order.Order) error {
	if _, ok := r.s.orders[o.ID()]; !ok {
		return infra.NotFound("order not found")
	}
	r.s.orders[o.ID()] = *o
	return nil
}

type invoiceRepo struct{ s *state }

func (r invoiceRepo) Create(_ context.Context, inv *order.Invoice) error {
	if _, ok := r.s.orders[inv.OrderID()]; !ok {
		return infra.WrapRepoErr("invoice references unknown order", nil, infra.KindForeignKeyViolated)
	}
	r.s.invoices = append(r.s.invoices, *inv)
	return nil
}

type promotionRepo struct{ s *state }

func (r promotionRepo) Create(_ context.Context, p *promotion.Promotion) error {
	r.s.promotions = append(r.s.promotions, *p)
	return nil
}

func (r promotionRepo) FindCovering(_ context.Context, productID uuid.UUID, at time.Time) ([]*promotion.Promotion, error) {
	return coveringPromotions(r.s, productID, at), nil
}

type couponRepo struct{ s *state }

func (r couponRepo) Create(_ context.Context, c *promotion.Coupon) error {
	if _, ok := r.s.coupons[c.Code()]; ok {
		return infra.WrapRepoErr("coupon code already exists", nil, infra.KindDuplicateKey)
	}
	r.s.coupons[c.Code()] = *c
	return nil
}

func (r couponRepo) Redeem(_ context.Context, code string, now time.Time) (*promotion.Coupon, error) {
	c, ok := r.s.coupons[code]
	if !ok {
		return nil, infra.NotFound("coupon not found")
	}
	if err := c.Redeem(now); err != nil {
		return nil, err
	}
	r.s.coupons[code] = c
	return &c, nil
}

type returnRepo struct{ s *state }

func (r returnRepo) Create(_ context.Context, req *returns.Request) error {
	if _, ok := r.s.orders[req.OrderID()]; !ok {
		return infra.WrapRepoErr("return request references unknown order", nil, infra.KindForeignKeyViolated)
	}
	r.s.returns[req.ID()] = *req
	return nil
}

func (r returnRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*returns.Request, error) {
	req, ok := r.s.returns[id]
	if !ok {
		return nil, infra.NotFound("return request not found")
	}
	return &req, nil
}

func (r returnRepo) UpdateStatus(_ context.Context, req *returns.Request) error {
	if _, ok := r.s.returns[req.ID()]; !ok {
		return infra.NotFound("return request not found")
	}
	r.s.returns[req.ID()] = *req
	return nil
}

func coveringPromotions(s *state, productID uuid.UUID, at time.Time) []*promotion.Promotion {
	var out []*promotion.Promotion
	for i := range s.promotions {
		p := s.promotions[i]
		if p.ProductID() == productID && p.Covers(at) {
			out = append(out, &p)
		}
	}
	return out
}

func lessID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
