package repository

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/product"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) *ProductRepository {
	return &ProductRepository{db: dbtx}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, base_price, created_at)
		VALUES ($1, $2, $3::numeric, $4)`,
		p.ID(), p.Name(), p.BasePrice().String(), p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

const ProductColumns = "id, name, base_price::text, created_at"

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	p, err := ScanProduct(r.db.QueryRow(ctx, `
		SELECT `+ProductColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return p, nil
}

func ScanProduct(row pgx.Row) (*product.Product, error) {
	var (
		id        uuid.UUID
		name      string
		price     string
		createdAt time.Time
	)
	if err := row.Scan(&id, &name, &price, &createdAt); err != nil {
		return nil, err
	}
	base, err := pgconv.DecimalFromText(price)
	if err != nil {
		return nil, err
	}
	return product.ReconstructProduct(id, name, base, createdAt), nil
}
