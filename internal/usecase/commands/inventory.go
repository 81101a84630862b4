package commands

import (
	"context"

	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/pkg/clock"
	"fulfillment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateInventoryRecordRequest struct {
	ProductID uuid.UUID
	Location  string
	Stock     int
	Threshold int
}

type InventoryCommands interface {
	CreateRecord(ctx context.Context, req CreateInventoryRecordRequest) (*inventory.Record, error)
	AdjustStock(ctx context.Context, recordID uuid.UUID, delta int) (*Adjustment, error)
}

type inventoryCommandsImpl struct {
	uow    shared.UnitOfWork
	ledger *Ledger
	clock  clock.Clock
}

func NewInventoryCommands(uow shared.UnitOfWork, ledger *Ledger, clk clock.Clock) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow, ledger: ledger, clock: clk}
}

// CreateRecord stores a record and books its opening stock as a movement, so
// stock levels replayed for earlier times do not include it.
func (uc *inventoryCommandsImpl) CreateRecord(ctx context.Context, req CreateInventoryRecordRequest) (*inventory.Record, error) {
	now := uc.clock.Now()
	rec, err := inventory.NewRecord(req.ProductID, req.Location, req.Stock, req.Threshold, now)
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Products().FindByID(ctx, req.ProductID); derr != nil {
			return derr
		}
		if derr := tx.Inventory().Create(ctx, rec); derr != nil {
			return derr
		}
		if rec.Stock() == 0 {
			return nil
		}
		return tx.Inventory().AppendMovement(ctx, inventory.NewMovement(rec, rec.Stock(), now))
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (uc *inventoryCommandsImpl) AdjustStock(ctx context.Context, recordID uuid.UUID, delta int) (*Adjustment, error) {
	var adj *Adjustment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		adj, derr = uc.ledger.Apply(ctx, tx, recordID, delta)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return adj, nil
}
