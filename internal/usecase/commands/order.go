package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/pkg/clock"
	"fulfillment-engine/internal/pkg/config"
	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/pkg/money"
	"fulfillment-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	subjectOrderCreated       = "Order Created"
	subjectOrderStatusUpdated = "Order Status Updated"
	subjectInvoiceGenerated   = "Invoice Generated"
)

type OrderLineRequest struct {
	ProductID uuid.UUID
	Quantity  int
	// UnitPrice overrides the catalog price when set.
	UnitPrice *string
}

type CreateOrderRequest struct {
	CustomerID    uuid.UUID
	CustomerEmail string
	Lines         []OrderLineRequest
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*order.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, newStatus string) (*order.Order, error)
	GenerateInvoice(ctx context.Context, orderID uuid.UUID) (*order.Invoice, error)
}

type orderCommandsImpl struct {
	uow          shared.UnitOfWork
	ledger       *Ledger
	notifier     shared.Notifier
	clock        clock.Clock
	reserveStock bool
}

func NewOrderCommands(uow shared.UnitOfWork, ledger *Ledger, notifier shared.Notifier, clk clock.Clock, cfg config.Config) OrderCommands {
	return &orderCommandsImpl{
		uow:          uow,
		ledger:       ledger,
		notifier:     notifier,
		clock:        clk,
		reserveStock: cfg.Engine.ReserveStockOnOrder,
	}
}

func (uc *orderCommandsImpl) CreateOrder(ctx context.Context, req CreateOrderRequest) (*order.Order, error) {
	email, err := order.NewEmail(req.CustomerEmail)
	if err != nil {
		return nil, err
	}
	if len(req.Lines) == 0 {
		return nil, order.ErrNoLines
	}

	var created *order.Order
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		lines := make([]order.Line, 0, len(req.Lines))
		for i, item := range req.Lines {
			price, derr := uc.resolveUnitPrice(ctx, tx, item, now)
			if derr != nil {
				return errs.Wrap(derr, fmt.Sprintf("line %d", i+1))
			}
			line, derr := order.NewLine(item.ProductID, item.Quantity, price)
			if derr != nil {
				return errs.Wrap(derr, fmt.Sprintf("line %d", i+1))
			}
			lines = append(lines, line)
		}

		o, derr := order.NewOrder(req.CustomerID, email, lines, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Orders().Create(ctx, o); derr != nil {
			return derr
		}

		if uc.reserveStock {
			for _, l := range o.Lines() {
				if _, derr = uc.ledger.ApplyToProduct(ctx, tx, l.ProductID(), -l.Quantity()); derr != nil {
					return derr
				}
			}
		}

		shared.NotifyAfterCommit(tx, uc.notifier, o.CustomerEmail().String(), subjectOrderCreated,
			fmt.Sprintf("Your order #%s has been created with a total amount of $%s.", o.ID(), o.Total().StringFixed(money.Scale)))
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// resolveUnitPrice uses the explicit price when given, otherwise the catalog
// price after any active promotion. Unknown products are caller errors here.
func (uc *orderCommandsImpl) resolveUnitPrice(ctx context.Context, tx shared.Tx, item OrderLineRequest, now time.Time) (decimal.Decimal, error) {
	p, err := tx.Products().FindByID(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return decimal.Zero, errs.Validationf("unknown product %s", item.ProductID)
		}
		return decimal.Zero, err
	}

	if item.UnitPrice != nil {
		price, ok := money.Parse(*item.UnitPrice)
		if !ok {
			return decimal.Zero, ErrInvalidPrice
		}
		return price, nil
	}

	candidates, err := tx.Promotions().FindCovering(ctx, p.ID(), now)
	if err != nil {
		return decimal.Zero, err
	}
	return promotion.EffectivePrice(p.BasePrice(), promotion.SelectActive(candidates, now)), nil
}

func (uc *orderCommandsImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, newStatus string) (*order.Order, error) {
	var updated *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := tx.Orders().FindByIDForUpdate(ctx, orderID)
		if derr != nil {
			return derr
		}
		from := o.Status()
		if derr = o.TransitionTo(order.Status(newStatus), uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Orders().UpdateStatus(ctx, o); derr != nil {
			return derr
		}

		shared.NotifyAfterCommit(tx, uc.notifier, o.CustomerEmail().String(), subjectOrderStatusUpdated,
			fmt.Sprintf("Your order #%s status changed from %s to %s.", o.ID(), from, o.Status()))
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *orderCommandsImpl) GenerateInvoice(ctx context.Context, orderID uuid.UUID) (*order.Invoice, error) {
	var inv *order.Invoice
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := tx.Orders().FindByID(ctx, orderID)
		if derr != nil {
			return derr
		}
		inv = order.NewInvoice(o, uc.clock.Now())
		if derr = tx.Invoices().Create(ctx, inv); derr != nil {
			return derr
		}

		shared.NotifyAfterCommit(tx, uc.notifier, o.CustomerEmail().String(), subjectInvoiceGenerated,
			fmt.Sprintf("An invoice for order #%s has been generated with a total amount of $%s.", o.ID(), inv.Amount().StringFixed(money.Scale)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}
