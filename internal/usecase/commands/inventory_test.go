//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fulfillment-engine/internal/domain/analytics"
	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/usecase/commands"
	"fulfillment-engine/internal/usecase/queries"
	"fulfillment-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	f    *fixture
}

func (s *InventoryCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newFixture(s.ctrl)
}

func TestInventoryCommandsSuite(t *testing.T) {
	suite.Run(t, new(InventoryCommandsTestSuite))
}

func (s *InventoryCommandsTestSuite) TestCreateRecord() {
	ctx := context.Background()

	s.Run("unknown product", func() {
		_, err := s.f.inventory.CreateRecord(ctx, commands.CreateInventoryRecordRequest{
			ProductID: uuid.New(), Location: "Warehouse A", Stock: 1, Threshold: 1,
		})
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("duplicate location for product", func() {
		productID := s.f.createProduct(s.T(), "Widget", "10.00")
		s.f.createRecord(s.T(), productID, 5, 1)

		_, err := s.f.inventory.CreateRecord(ctx, commands.CreateInventoryRecordRequest{
			ProductID: productID, Location: "Warehouse A", Stock: 1, Threshold: 1,
		})
		s.ErrorIs(err, errs.ErrValidation)
	})
}

func (s *InventoryCommandsTestSuite) TestAdjustStock_Alerts() {
	ctx := context.Background()
	productID := s.f.createProduct(s.T(), "Widget", "10.00")
	rec := s.f.createRecord(s.T(), productID, 15, 10)

	s.f.notifier.EXPECT().
		Notify(gomock.Any(), adminRecipient, "Low Stock Alert", gomock.Any()).
		Return(nil).Times(2)

	adj, err := s.f.inventory.AdjustStock(ctx, rec.ID(), -6)
	s.Require().NoError(err)
	s.Equal(9, adj.Record.Stock())
	s.Require().NotNil(adj.Alert)
	s.Equal(9, adj.Alert.Stock())
	s.Equal(1, s.f.alertCount(s.T()))

	adj, err = s.f.inventory.AdjustStock(ctx, rec.ID(), -1)
	s.Require().NoError(err)
	s.Equal(8, adj.Record.Stock())
	s.NotNil(adj.Alert)
	s.Equal(2, s.f.alertCount(s.T()), "every adjustment below threshold raises a new alert")

	adj, err = s.f.inventory.AdjustStock(ctx, rec.ID(), 10)
	s.Require().NoError(err)
	s.Equal(18, adj.Record.Stock())
	s.Nil(adj.Alert)
	s.Equal(2, s.f.alertCount(s.T()))
}

func (s *InventoryCommandsTestSuite) TestAdjustStock_Rejections() {
	ctx := context.Background()
	productID := s.f.createProduct(s.T(), "Widget", "10.00")
	rec := s.f.createRecord(s.T(), productID, 3, 1)

	s.Run("overdraw leaves stock unchanged", func() {
		_, err := s.f.inventory.AdjustStock(ctx, rec.ID(), -4)
		s.ErrorIs(err, errs.ErrInvalidQuantity)
		s.Equal(3, s.f.stockOf(s.T(), rec.ID()))
		s.Equal(0, s.f.alertCount(s.T()))
	})

	s.Run("unknown record", func() {
		_, err := s.f.inventory.AdjustStock(ctx, uuid.New(), 1)
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("delta outside the stored range", func() {
		_, err := s.f.inventory.AdjustStock(ctx, rec.ID(), inventory.MaxStock+1)
		s.ErrorIs(err, errs.ErrValidation)
		s.Equal(3, s.f.stockOf(s.T(), rec.ID()))
	})

	s.Run("result above the stored range", func() {
		_, err := s.f.inventory.AdjustStock(ctx, rec.ID(), inventory.MaxStock-2)
		s.ErrorIs(err, inventory.ErrStockTooLarge)
		s.Equal(3, s.f.stockOf(s.T(), rec.ID()))
	})
}

func (s *InventoryCommandsTestSuite) TestAdjustStock_Concurrent() {
	ctx := context.Background()
	productID := s.f.createProduct(s.T(), "Widget", "10.00")
	rec := s.f.createRecord(s.T(), productID, 50, 0)

	const workers = 60
	var (
		wg       sync.WaitGroup
		ok       atomic.Int32
		rejected atomic.Int32
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.f.inventory.AdjustStock(ctx, rec.ID(), -1)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, errs.ErrInvalidQuantity):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(50), ok.Load())
	s.Equal(int32(workers-50), rejected.Load())
	s.Equal(0, s.f.stockOf(s.T(), rec.ID()))
}

func (s *InventoryCommandsTestSuite) TestLedger_NoNotificationOnRollback() {
	ctx := context.Background()
	productID := s.f.createProduct(s.T(), "Widget", "10.00")
	rec := s.f.createRecord(s.T(), productID, 15, 10)

	s.f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	boom := errors.New("later step failed")
	err := s.f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		adj, err := s.f.ledger.Apply(ctx, tx, rec.ID(), -10)
		s.Require().NoError(err)
		s.Require().NotNil(adj.Alert)
		return boom
	})
	s.ErrorIs(err, boom)
	s.Equal(15, s.f.stockOf(s.T(), rec.ID()))
	s.Equal(0, s.f.alertCount(s.T()))
}

func (s *InventoryCommandsTestSuite) TestLedger_NotifierFailureDoesNotFailAdjustment() {
	ctx := context.Background()
	productID := s.f.createProduct(s.T(), "Widget", "10.00")
	rec := s.f.createRecord(s.T(), productID, 15, 10)

	s.f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp down")).Times(1)

	s.f.clock.Add(time.Minute)
	adj, err := s.f.inventory.AdjustStock(ctx, rec.ID(), -7)
	s.Require().NoError(err)
	s.Equal(8, adj.Record.Stock())
	s.Equal(epoch.Add(time.Minute), adj.Record.UpdatedAt())
}

func (s *InventoryCommandsTestSuite) TestCreateRecord_OpeningStockIsDatedToCreation() {
	ctx := context.Background()
	productID := s.f.createProduct(s.T(), "Widget", "10.00")
	s.f.createRecord(s.T(), productID, 100, 0)
	turnover := queries.NewAnalyticsQueries(s.f.store)

	s.Run("window before the record existed", func() {
		view, err := turnover.InventoryTurnover(ctx, analytics.Window{
			Start: epoch.Add(-10 * 24 * time.Hour),
			End:   epoch.Add(-5 * 24 * time.Hour),
		})
		s.Require().NoError(err)
		s.Zero(view.StartingStock)
		s.Zero(view.EndingStock)
		s.Nil(view.Ratio)
	})

	s.Run("window spanning creation", func() {
		view, err := turnover.InventoryTurnover(ctx, analytics.Window{
			Start: epoch.Add(-24 * time.Hour),
			End:   epoch.Add(24 * time.Hour),
		})
		s.Require().NoError(err)
		s.Zero(view.StartingStock)
		s.Equal(100, view.EndingStock)
	})
}
