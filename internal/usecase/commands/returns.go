package commands

import (
	"context"
	"fmt"

	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/domain/returns"
	"fulfillment-engine/internal/pkg/clock"
	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const subjectReturnUpdated = "Return Request Update"

var ErrRefundFailed = errs.New("refund failed")

type CreateReturnRequest struct {
	OrderID     uuid.UUID
	Reason      string
	RequestType string
}

type ReturnCommands interface {
	Create(ctx context.Context, req CreateReturnRequest) (*returns.Request, error)
	Process(ctx context.Context, returnID uuid.UUID, action string) (*returns.Request, error)
}

type returnCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   *Ledger
	refunds  shared.RefundProcessor
	notifier shared.Notifier
	clock    clock.Clock
}

func NewReturnCommands(uow shared.UnitOfWork, ledger *Ledger, refunds shared.RefundProcessor, notifier shared.Notifier, clk clock.Clock) ReturnCommands {
	return &returnCommandsImpl{
		uow:      uow,
		ledger:   ledger,
		refunds:  refunds,
		notifier: notifier,
		clock:    clk,
	}
}

func (uc *returnCommandsImpl) Create(ctx context.Context, req CreateReturnRequest) (*returns.Request, error) {
	reqType, err := returns.ParseRequestType(req.RequestType)
	if err != nil {
		return nil, err
	}
	r, err := returns.NewRequest(req.OrderID, req.Reason, reqType, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Orders().FindByID(ctx, req.OrderID); derr != nil {
			return derr
		}
		return tx.Returns().Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Process resolves a pending request. The status change and its refund or
// restock side effect commit together; a failing side effect leaves the
// request pending. The refund is keyed by the request id and issued after
// every other write.
func (uc *returnCommandsImpl) Process(ctx context.Context, returnID uuid.UUID, action string) (*returns.Request, error) {
	act, err := returns.ParseAction(action)
	if err != nil {
		return nil, err
	}

	var processed *returns.Request
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Returns().FindByIDForUpdate(ctx, returnID)
		if derr != nil {
			return derr
		}
		if derr = r.Process(act, uc.clock.Now()); derr != nil {
			return derr
		}
		o, derr := tx.Orders().FindByID(ctx, r.OrderID())
		if derr != nil {
			return derr
		}

		if r.Status() == returns.StatusReplaced {
			if derr = uc.restock(ctx, tx, o); derr != nil {
				return derr
			}
		}
		if derr = tx.Returns().UpdateStatus(ctx, r); derr != nil {
			return derr
		}
		if r.Status() == returns.StatusRefunded {
			if derr = uc.refunds.Refund(ctx, r.ID(), o.ID(), o.Total()); derr != nil {
				return errs.Mark(errs.Wrap(derr, "refund order "+o.ID().String()), ErrRefundFailed)
			}
		}

		shared.NotifyAfterCommit(tx, uc.notifier, o.CustomerEmail().String(), subjectReturnUpdated,
			fmt.Sprintf("Your return request #%s for order #%s is now %s.", r.ID(), o.ID(), r.Status()))
		processed = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return processed, nil
}

func (uc *returnCommandsImpl) restock(ctx context.Context, tx shared.Tx, o *order.Order) error {
	for _, l := range o.Lines() {
		if _, err := uc.ledger.ApplyToProduct(ctx, tx, l.ProductID(), l.Quantity()); err != nil {
			return err
		}
	}
	return nil
}
