//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/pkg/config"
	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/usecase/commands"
	"fulfillment-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	f    *fixture

	first  uuid.UUID
	second uuid.UUID
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newFixture(s.ctrl)
	s.first = s.f.createProduct(s.T(), "Mug", "10.00")
	s.second = s.f.createProduct(s.T(), "Teapot", "20.00")
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) catalogPricedOrder() commands.CreateOrderRequest {
	return commands.CreateOrderRequest{
		CustomerID:    uuid.New(),
		CustomerEmail: "buyer@example.com",
		Lines: []commands.OrderLineRequest{
			{ProductID: s.first, Quantity: 2},
			{ProductID: s.second, Quantity: 3},
		},
	}
}

func (s *OrderCommandsTestSuite) TestCreateOrder() {
	ctx := context.Background()

	s.Run("prices lines from the catalog and notifies the customer", func() {
		s.f.notifier.EXPECT().
			Notify(gomock.Any(), "buyer@example.com", "Order Created", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, body string) error {
				s.Contains(body, "$80.00")
				return nil
			}).Times(1)

		o, err := s.f.orders.CreateOrder(ctx, s.catalogPricedOrder())
		s.Require().NoError(err)
		s.Equal(order.StatusPending, o.Status())
		s.Equal("80.00", o.Total().StringFixed(2))

		stored, err := s.f.store.FindOrderByID(ctx, o.ID())
		s.Require().NoError(err)
		s.Equal("80.00", stored.Total.StringFixed(2))
		s.Len(stored.Lines, 2)
	})

	s.Run("explicit unit price overrides the catalog", func() {
		s.f.allowNotifications()
		req := builder.NewOrderBuilder().AsEightyDollarOrder(s.first, s.second).
			WithItem(s.first, 1, "0.50").BuildCommand()

		o, err := s.f.orders.CreateOrder(ctx, req)
		s.Require().NoError(err)
		s.Equal("80.50", o.Total().StringFixed(2))
	})

	s.Run("active promotion discounts the catalog price", func() {
		s.f.allowNotifications()
		_, err := s.f.pricing.CreatePromotion(ctx, commands.CreatePromotionRequest{
			ProductID: s.first,
			Discount:  "25",
			StartsAt:  epoch.Add(-time.Hour),
			EndsAt:    epoch.Add(time.Hour),
		})
		s.Require().NoError(err)

		o, err := s.f.orders.CreateOrder(ctx, s.catalogPricedOrder())
		s.Require().NoError(err)
		s.Equal("7.50", o.Lines()[0].UnitPrice().StringFixed(2))
		s.Equal("75.00", o.Total().StringFixed(2))
	})
}

func (s *OrderCommandsTestSuite) TestCreateOrder_Rejections() {
	ctx := context.Background()
	s.f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name   string
		mutate func(*commands.CreateOrderRequest)
		errIs  error
	}{
		{"no lines", func(r *commands.CreateOrderRequest) { r.Lines = nil }, order.ErrNoLines},
		{"bad email", func(r *commands.CreateOrderRequest) { r.CustomerEmail = "nobody" }, order.ErrInvalidEmail},
		{"zero quantity", func(r *commands.CreateOrderRequest) { r.Lines[0].Quantity = 0 }, order.ErrNonPositiveQuantity},
		{"unknown product", func(r *commands.CreateOrderRequest) { r.Lines[1].ProductID = uuid.New() }, errs.ErrValidation},
		{"malformed price", func(r *commands.CreateOrderRequest) {
			p := "ten"
			r.Lines[0].UnitPrice = &p
		}, commands.ErrInvalidPrice},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := s.catalogPricedOrder()
			tc.mutate(&req)

			_, err := s.f.orders.CreateOrder(ctx, req)
			s.ErrorIs(err, tc.errIs)
			s.ErrorIs(err, errs.ErrValidation)
		})
	}

	revenue, err := s.f.store.RevenueBetween(ctx, epoch.Add(-time.Hour), epoch.Add(time.Hour))
	s.Require().NoError(err)
	s.True(revenue.IsZero(), "rejected orders must not be stored")
}

func (s *OrderCommandsTestSuite) TestCreateOrder_ReservesStock() {
	ctx := context.Background()
	s.f = newFixture(s.ctrl, func(c *config.Config) { c.Engine.ReserveStockOnOrder = true })
	s.first = s.f.createProduct(s.T(), "Mug", "10.00")
	s.second = s.f.createProduct(s.T(), "Teapot", "20.00")
	firstRec := s.f.createRecord(s.T(), s.first, 10, 0)
	secondRec := s.f.createRecord(s.T(), s.second, 2, 0)
	s.f.allowNotifications()

	s.Run("insufficient stock rolls the whole order back", func() {
		_, err := s.f.orders.CreateOrder(ctx, s.catalogPricedOrder())
		s.ErrorIs(err, errs.ErrInvalidQuantity)
		s.Equal(10, s.f.stockOf(s.T(), firstRec.ID()))
		s.Equal(2, s.f.stockOf(s.T(), secondRec.ID()))

		totals, err := s.f.store.QuantitiesByProduct(ctx, epoch.Add(-time.Hour), epoch.Add(time.Hour))
		s.Require().NoError(err)
		s.Empty(totals)
	})

	s.Run("stock is consumed with the order", func() {
		_, err := s.f.inventory.AdjustStock(ctx, secondRec.ID(), 5)
		s.Require().NoError(err)

		_, err = s.f.orders.CreateOrder(ctx, s.catalogPricedOrder())
		s.Require().NoError(err)
		s.Equal(8, s.f.stockOf(s.T(), firstRec.ID()))
		s.Equal(4, s.f.stockOf(s.T(), secondRec.ID()))
	})
}

func (s *OrderCommandsTestSuite) TestUpdateStatus() {
	ctx := context.Background()
	s.f.allowNotifications()
	o, err := s.f.orders.CreateOrder(ctx, s.catalogPricedOrder())
	s.Require().NoError(err)

	s.Run("walks the full chain", func() {
		for _, next := range []string{"processing", "shipped", "delivered"} {
			updated, err := s.f.orders.UpdateStatus(ctx, o.ID(), next)
			s.Require().NoError(err)
			s.Equal(next, updated.Status().String())
		}
	})

	s.Run("delivered cannot go back to pending", func() {
		_, err := s.f.orders.UpdateStatus(ctx, o.ID(), "pending")
		s.ErrorIs(err, errs.ErrInvalidTransition)

		stored, err := s.f.store.FindOrderByID(ctx, o.ID())
		s.Require().NoError(err)
		s.Equal("delivered", stored.Status)
	})

	s.Run("unknown status value", func() {
		other, err := s.f.orders.CreateOrder(ctx, s.catalogPricedOrder())
		s.Require().NoError(err)
		_, err = s.f.orders.UpdateStatus(ctx, other.ID(), "lost")
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})

	s.Run("unknown order", func() {
		_, err := s.f.orders.UpdateStatus(ctx, uuid.New(), "processing")
		s.ErrorIs(err, errs.ErrNotFound)
	})
}

func (s *OrderCommandsTestSuite) TestGenerateInvoice() {
	ctx := context.Background()
	s.f.allowNotifications()
	o, err := s.f.orders.CreateOrder(ctx, s.catalogPricedOrder())
	s.Require().NoError(err)

	first, err := s.f.orders.GenerateInvoice(ctx, o.ID())
	s.Require().NoError(err)
	s.Equal("80.00", first.Amount().StringFixed(2))

	s.f.clock.Add(time.Hour)
	second, err := s.f.orders.GenerateInvoice(ctx, o.ID())
	s.Require().NoError(err)
	s.NotEqual(first.ID(), second.ID())

	invoices, err := s.f.store.ListInvoicesByOrder(ctx, o.ID())
	s.Require().NoError(err)
	s.Len(invoices, 2)
	s.Equal(first.ID(), invoices[0].ID)

	_, err = s.f.orders.GenerateInvoice(ctx, uuid.New())
	s.ErrorIs(err, errs.ErrNotFound)
}
