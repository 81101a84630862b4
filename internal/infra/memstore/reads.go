package memstore

import (
	"context"
	"maps"
	"slices"
	"sort"
	"time"

	"fulfillment-engine/internal/domain/analytics"
	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/domain/returns"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *Store) FindOrderByID(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
	o, ok := s.read().orders[id]
	if !ok {
		return nil, infra.NotFound("order not found")
	}
	return queries.NewOrderView(&o), nil
}

func (s *Store) ListOrders(_ context.Context, filter queries.OrderFilter, after *queries.Keyset, limit int) ([]*queries.OrderView, error) {
	var all []order.Order
	for _, o := range s.read().orders {
		if filter.Status != nil && o.Status() != *filter.Status {
			continue
		}
		if filter.CustomerID != nil && o.CustomerID() != *filter.CustomerID {
			continue
		}
		all = append(all, o)
	}
	page := newestPage(all, after, limit)
	out := make([]*queries.OrderView, 0, len(page))
	for _, o := range page {
		out = append(out, queries.NewOrderView(o))
	}
	return out, nil
}

func (s *Store) ListInvoicesByOrder(_ context.Context, orderID uuid.UUID) ([]*queries.InvoiceView, error) {
	out := []*queries.InvoiceView{}
	for _, inv := range s.read().invoices {
		if inv.OrderID() == orderID {
			out = append(out, queries.NewInvoiceView(&inv))
		}
	}
	return out, nil
}

func (s *Store) FindRecordByID(_ context.Context, id uuid.UUID) (*queries.InventoryRecordView, error) {
	rec, ok := s.read().records[id]
	if !ok {
		return nil, infra.NotFound("inventory record not found")
	}
	return queries.NewInventoryRecordView(&rec), nil
}

func (s *Store) ListRecords(_ context.Context, productID *uuid.UUID, after *queries.Keyset, limit int) ([]*queries.InventoryRecordView, error) {
	var all []inventory.Record
	for _, rec := range s.read().records {
		if productID == nil || rec.ProductID() == *productID {
			all = append(all, rec)
		}
	}
	page := newestPage(all, after, limit)
	out := make([]*queries.InventoryRecordView, 0, len(page))
	for _, rec := range page {
		out = append(out, queries.NewInventoryRecordView(rec))
	}
	return out, nil
}

func (s *Store) ListLowStock(_ context.Context) ([]*queries.InventoryRecordView, error) {
	var low []inventory.Record
	for _, rec := range s.read().records {
		if rec.BelowThreshold() {
			low = append(low, rec)
		}
	}
	sort.Slice(low, func(i, j int) bool { return lessID(low[i].ID(), low[j].ID()) })

	out := make([]*queries.InventoryRecordView, 0, len(low))
	for i := range low {
		out = append(out, queries.NewInventoryRecordView(&low[i]))
	}
	return out, nil
}

func (s *Store) ListAlerts(_ context.Context, after *queries.Keyset, limit int) ([]*queries.AlertView, error) {
	page := newestPage(slices.Clone(s.read().alerts), after, limit)
	out := make([]*queries.AlertView, 0, len(page))
	for _, a := range page {
		out = append(out, queries.NewAlertView(a))
	}
	return out, nil
}

func (s *Store) FindReturnByID(_ context.Context, id uuid.UUID) (*queries.ReturnRequestView, error) {
	r, ok := s.read().returns[id]
	if !ok {
		return nil, infra.NotFound("return request not found")
	}
	return queries.NewReturnRequestView(&r), nil
}

func (s *Store) ListReturns(_ context.Context, status *returns.Status, after *queries.Keyset, limit int) ([]*queries.ReturnRequestView, error) {
	var all []returns.Request
	for _, r := range s.read().returns {
		if status == nil || r.Status() == *status {
			all = append(all, r)
		}
	}
	page := newestPage(all, after, limit)
	out := make([]*queries.ReturnRequestView, 0, len(page))
	for _, r := range page {
		out = append(out, queries.NewReturnRequestView(r))
	}
	return out, nil
}

func (s *Store) ListProducts(_ context.Context, after *queries.Keyset, limit int) ([]*queries.ProductView, error) {
	page := newestPage(slices.Collect(maps.Values(s.read().products)), after, limit)
	out := make([]*queries.ProductView, 0, len(page))
	for _, p := range page {
		out = append(out, queries.NewProductView(p))
	}
	return out, nil
}

func (s *Store) FindProductByID(_ context.Context, id uuid.UUID) (*queries.ProductView, error) {
	p, ok := s.read().products[id]
	if !ok {
		return nil, infra.NotFound("product not found")
	}
	return queries.NewProductView(&p), nil
}

func (s *Store) ListPromotionsCovering(_ context.Context, productID uuid.UUID, at time.Time) ([]*queries.PromotionView, error) {
	covering := coveringPromotions(s.read(), productID, at)
	out := make([]*queries.PromotionView, 0, len(covering))
	for _, p := range covering {
		out = append(out, queries.NewPromotionView(p))
	}
	return out, nil
}

func (s *Store) RevenueBetween(_ context.Context, start, end time.Time) (decimal.Decimal, error) {
	w := analytics.Window{Start: start, End: end}
	total := decimal.Zero
	for _, o := range s.read().orders {
		if w.Contains(o.CreatedAt()) {
			total = total.Add(o.Total())
		}
	}
	return total, nil
}

func (s *Store) CurrentTotalStock(_ context.Context) (int, error) {
	total := 0
	for _, rec := range s.read().records {
		total += rec.Stock()
	}
	return total, nil
}

func (s *Store) StockDeltaSince(_ context.Context, t time.Time) (int, error) {
	return -inventory.StockAt(0, s.read().movements, t), nil
}

func (s *Store) QuantitiesByProduct(_ context.Context, start, end time.Time) ([]analytics.ProductQuantity, error) {
	w := analytics.Window{Start: start, End: end}
	totals := map[uuid.UUID]int{}
	for _, o := range s.read().orders {
		if !w.Contains(o.CreatedAt()) {
			continue
		}
		for _, l := range o.Lines() {
			totals[l.ProductID()] += l.Quantity()
		}
	}
	out := make([]analytics.ProductQuantity, 0, len(totals))
	for id, qty := range totals {
		out = append(out, analytics.ProductQuantity{ProductID: id, Quantity: qty})
	}
	return out, nil
}

func (s *Store) QuantitySold(_ context.Context, productID uuid.UUID, start, end time.Time) (int, error) {
	w := analytics.Window{Start: start, End: end}
	sold := 0
	for _, o := range s.read().orders {
		if !w.Contains(o.CreatedAt()) {
			continue
		}
		for _, l := range o.Lines() {
			if l.ProductID() == productID {
				sold += l.Quantity()
			}
		}
	}
	return sold, nil
}

type keyed interface {
	ID() uuid.UUID
	CreatedAt() time.Time
}

// newestPage sorts items newest first and returns up to limit of them that
// fall strictly after the keyset. items is sorted in place.
func newestPage[T any, P interface {
	*T
	keyed
}](items []T, after *queries.Keyset, limit int) []*T {
	sort.Slice(items, func(i, j int) bool {
		a, b := P(&items[i]), P(&items[j])
		return newerFirst(a.CreatedAt(), a.ID(), b.CreatedAt(), b.ID())
	})
	out := []*T{}
	for i := range items {
		p := P(&items[i])
		if after != nil && !newerFirst(after.CreatedAt, after.ID, p.CreatedAt(), p.ID()) {
			continue
		}
		out = append(out, &items[i])
		if len(out) == limit {
			break
		}
	}
	return out
}

// newerFirst orders by created time descending, then id descending.
func newerFirst(at time.Time, a uuid.UUID, bt time.Time, b uuid.UUID) bool {
	if !at.Equal(bt) {
		return at.After(bt)
	}
	return lessID(b, a)
}
