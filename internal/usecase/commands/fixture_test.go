//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/infra/memstore"
	"fulfillment-engine/internal/pkg/clock"
	"fulfillment-engine/internal/pkg/config"
	"fulfillment-engine/internal/usecase/commands"
	sharedmock "fulfillment-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

const adminRecipient = "inventory-admin@example.com"

// fixture wires every command against one in-memory store.
type fixture struct {
	cfg       config.Config
	store     *memstore.Store
	clock     *clock.MockClock
	notifier  *sharedmock.MockNotifier
	refunds   *sharedmock.MockRefundProcessor
	ledger    *commands.Ledger
	catalog   commands.CatalogCommands
	inventory commands.InventoryCommands
	orders    commands.OrderCommands
	pricing   commands.PricingCommands
	returns   commands.ReturnCommands
}

func newFixture(ctrl *gomock.Controller, mutate ...func(*config.Config)) *fixture {
	cfg := config.NewTestConfig()
	cfg.Notifier.AdminRecipient = adminRecipient
	for _, m := range mutate {
		m(&cfg)
	}

	f := &fixture{
		cfg:      cfg,
		store:    memstore.New(),
		clock:    clock.NewMockClock(epoch),
		notifier: sharedmock.NewMockNotifier(ctrl),
		refunds:  sharedmock.NewMockRefundProcessor(ctrl),
	}
	f.ledger = commands.NewLedger(f.clock, f.notifier, cfg)
	f.catalog = commands.NewCatalogCommands(f.store, f.clock)
	f.inventory = commands.NewInventoryCommands(f.store, f.ledger, f.clock)
	f.orders = commands.NewOrderCommands(f.store, f.ledger, f.notifier, f.clock, cfg)
	f.pricing = commands.NewPricingCommands(f.store, f.clock)
	f.returns = commands.NewReturnCommands(f.store, f.ledger, f.refunds, f.notifier, f.clock)
	return f
}

func (f *fixture) allowNotifications() {
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) createProduct(t *testing.T, name, price string) uuid.UUID {
	t.Helper()
	p, err := f.catalog.CreateProduct(context.Background(), commands.CreateProductRequest{Name: name, BasePrice: price})
	require.NoError(t, err)
	return p.ID()
}

func (f *fixture) createRecord(t *testing.T, productID uuid.UUID, stock, threshold int) *inventory.Record {
	t.Helper()
	rec, err := f.inventory.CreateRecord(context.Background(), commands.CreateInventoryRecordRequest{
		ProductID: productID,
		Location:  "Warehouse A",
		Stock:     stock,
		Threshold: threshold,
	})
	require.NoError(t, err)
	return rec
}

func (f *fixture) stockOf(t *testing.T, recordID uuid.UUID) int {
	t.Helper()
	v, err := f.store.FindRecordByID(context.Background(), recordID)
	require.NoError(t, err)
	return v.Stock
}

func (f *fixture) alertCount(t *testing.T) int {
	t.Helper()
	alerts, err := f.store.ListAlerts(context.Background(), nil, 1000)
	require.NoError(t, err)
	return len(alerts)
}
