//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"fulfillment-engine/internal/domain/order"
	"fulfillment-engine/internal/domain/returns"
	"fulfillment-engine/internal/infra/payment"
	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/usecase/commands"
	"fulfillment-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReturnCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	f    *fixture

	order     *order.Order
	firstRec  uuid.UUID
	secondRec uuid.UUID
}

func (s *ReturnCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newFixture(s.ctrl)

	first := s.f.createProduct(s.T(), "Mug", "10.00")
	second := s.f.createProduct(s.T(), "Teapot", "20.00")
	s.firstRec = s.f.createRecord(s.T(), first, 5, 0).ID()
	s.secondRec = s.f.createRecord(s.T(), second, 5, 0).ID()

	s.f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), "Order Created", gomock.Any()).Return(nil).AnyTimes()
	o, err := s.f.orders.CreateOrder(context.Background(), commands.CreateOrderRequest{
		CustomerID:    uuid.New(),
		CustomerEmail: "buyer@example.com",
		Lines: []commands.OrderLineRequest{
			{ProductID: first, Quantity: 2},
			{ProductID: second, Quantity: 3},
		},
	})
	s.Require().NoError(err)
	s.order = o
}

func TestReturnCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReturnCommandsTestSuite))
}

func (s *ReturnCommandsTestSuite) create(reqType string) *returns.Request {
	r, err := s.f.returns.Create(context.Background(), commands.CreateReturnRequest{
		OrderID:     s.order.ID(),
		Reason:      "Item arrived damaged",
		RequestType: reqType,
	})
	s.Require().NoError(err)
	return r
}

func (s *ReturnCommandsTestSuite) expectReturnUpdate(times int) {
	s.f.notifier.EXPECT().
		Notify(gomock.Any(), "buyer@example.com", "Return Request Update", gomock.Any()).
		Return(nil).Times(times)
}

func (s *ReturnCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("pending on creation", func() {
		r := s.create("refund")
		s.Equal(returns.StatusPending, r.Status())
	})

	s.Run("unknown order", func() {
		_, err := s.f.returns.Create(ctx, commands.CreateReturnRequest{OrderID: uuid.New(), Reason: "x", RequestType: "refund"})
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("unknown type", func() {
		_, err := s.f.returns.Create(ctx, commands.CreateReturnRequest{OrderID: s.order.ID(), Reason: "x", RequestType: "exchange"})
		s.ErrorIs(err, errs.ErrValidation)
	})
}

func (s *ReturnCommandsTestSuite) TestProcess_Refund() {
	ctx := context.Background()
	r := s.create("refund")

	s.f.refunds.EXPECT().Refund(gomock.Any(), r.ID(), s.order.ID(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, amount decimal.Decimal) error {
			s.Equal("80.00", amount.StringFixed(2))
			return nil
		}).Times(1)
	s.expectReturnUpdate(1)

	processed, err := s.f.returns.Process(ctx, r.ID(), "approve")
	s.Require().NoError(err)
	s.Equal(returns.StatusRefunded, processed.Status())
	s.NotNil(processed.ProcessedAt())

	s.Run("re-processing fails without a second refund", func() {
		_, err := s.f.returns.Process(ctx, r.ID(), "approve")
		s.ErrorIs(err, errs.ErrInvalidTransition)
		_, err = s.f.returns.Process(ctx, r.ID(), "deny")
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})

	s.Equal(5, s.f.stockOf(s.T(), s.firstRec), "refunds never touch stock")
}

func (s *ReturnCommandsTestSuite) TestProcess_RefundFailureRollsBack() {
	ctx := context.Background()
	r := s.create("refund")

	s.f.refunds.EXPECT().Refund(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("gateway timeout")).Times(1)
	s.expectReturnUpdate(0)

	_, err := s.f.returns.Process(ctx, r.ID(), "approve")
	s.Require().Error(err)
	s.ErrorIs(err, commands.ErrRefundFailed)

	stored, err := s.f.store.FindReturnByID(ctx, r.ID())
	s.Require().NoError(err)
	s.Equal("pending", stored.Status)
	s.Nil(stored.ProcessedAt)
}

func (s *ReturnCommandsTestSuite) TestProcess_RetriedCommitRefundsOnce() {
	ctx := context.Background()
	r := s.create("refund")

	var buf bytes.Buffer
	refunds := payment.NewLoggingRefundProcessor(slog.New(slog.NewTextHandler(&buf, nil)))
	uow := &failFirstCommitUoW{inner: s.f.store}
	uc := commands.NewReturnCommands(uow, s.f.ledger, refunds, s.f.notifier, s.f.clock)
	s.expectReturnUpdate(1)

	processed, err := uc.Process(ctx, r.ID(), "approve")
	s.Require().NoError(err)
	s.Equal(returns.StatusRefunded, processed.Status())
	s.Equal(2, uow.attempts)

	s.Equal(1, strings.Count(buf.String(), `msg="refund issued"`))
	s.Equal(1, strings.Count(buf.String(), `msg="refund already issued"`))
	s.Contains(buf.String(), "key="+r.ID().String())
}

func (s *ReturnCommandsTestSuite) TestProcess_Replacement() {
	ctx := context.Background()
	r := s.create("replacement")
	s.expectReturnUpdate(1)

	processed, err := s.f.returns.Process(ctx, r.ID(), "approve")
	s.Require().NoError(err)
	s.Equal(returns.StatusReplaced, processed.Status())
	s.Equal(7, s.f.stockOf(s.T(), s.firstRec))
	s.Equal(8, s.f.stockOf(s.T(), s.secondRec))
}

func (s *ReturnCommandsTestSuite) TestProcess_ReplacementWithoutStockRecordRollsBack() {
	ctx := context.Background()
	orphan := s.f.createProduct(s.T(), "Orphan", "1.00")
	o, err := s.f.orders.CreateOrder(ctx, commands.CreateOrderRequest{
		CustomerID:    uuid.New(),
		CustomerEmail: "buyer@example.com",
		Lines:         []commands.OrderLineRequest{{ProductID: orphan, Quantity: 1}},
	})
	s.Require().NoError(err)
	r, err := s.f.returns.Create(ctx, commands.CreateReturnRequest{OrderID: o.ID(), Reason: "Wrong colour", RequestType: "replacement"})
	s.Require().NoError(err)
	s.expectReturnUpdate(0)

	_, err = s.f.returns.Process(ctx, r.ID(), "approve")
	s.ErrorIs(err, errs.ErrNotFound)

	stored, err := s.f.store.FindReturnByID(ctx, r.ID())
	s.Require().NoError(err)
	s.Equal("pending", stored.Status)
}

func (s *ReturnCommandsTestSuite) TestProcess_Deny() {
	ctx := context.Background()
	r := s.create("replacement")
	s.expectReturnUpdate(1)

	processed, err := s.f.returns.Process(ctx, r.ID(), "deny")
	s.Require().NoError(err)
	s.Equal(returns.StatusDenied, processed.Status())
	s.Equal(5, s.f.stockOf(s.T(), s.firstRec))
}

func (s *ReturnCommandsTestSuite) TestProcess_Rejections() {
	ctx := context.Background()
	r := s.create("refund")

	_, err := s.f.returns.Process(ctx, r.ID(), "escalate")
	s.ErrorIs(err, errs.ErrValidation)

	_, err = s.f.returns.Process(ctx, uuid.New(), "approve")
	s.ErrorIs(err, errs.ErrNotFound)
}

var errSerializationFailure = errors.New("could not serialize access")

// failFirstCommitUoW rolls back the first attempt after fn succeeds and runs
// fn again, the way a serialization failure at commit is retried.
type failFirstCommitUoW struct {
	inner    shared.UnitOfWork
	attempts int
}

func (u *failFirstCommitUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for {
		u.attempts++
		first := u.attempts == 1
		err := u.inner.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := fn(ctx, tx); err != nil {
				return err
			}
			if first {
				return errSerializationFailure
			}
			return nil
		})
		if errors.Is(err, errSerializationFailure) {
			continue
		}
		return err
	}
}
