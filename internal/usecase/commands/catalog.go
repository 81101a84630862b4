package commands

import (
	"context"

	"fulfillment-engine/internal/domain/product"
	"fulfillment-engine/internal/pkg/clock"
	"fulfillment-engine/internal/pkg/errs"
	"fulfillment-engine/internal/pkg/money"
	"fulfillment-engine/internal/usecase/shared"
)

var ErrInvalidPrice = errs.Validation("price must be a non-negative decimal amount")

type CreateProductRequest struct {
	Name      string
	BasePrice string
}

type CatalogCommands interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*product.Product, error)
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

func (uc *catalogCommandsImpl) CreateProduct(ctx context.Context, req CreateProductRequest) (*product.Product, error) {
	price, ok := money.Parse(req.BasePrice)
	if !ok {
		return nil, ErrInvalidPrice
	}
	p, err := product.NewProduct(req.Name, price, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
