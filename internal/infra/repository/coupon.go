package repository

import (
	"context"
	"time"

	"fulfillment-engine/internal/domain/promotion"
	"fulfillment-engine/internal/infra"
	"fulfillment-engine/internal/infra/db"
	"fulfillment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const couponColumns = `id, code, discount::text, tier, max_uses, use_count, expires_at, created_at`

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

func (r *CouponRepository) Create(ctx context.Context, c *promotion.Coupon) error {
	var maxUses *int32
	if m := c.MaxUses(); m != nil {
		v := int32(*m)
		maxUses = &v
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO coupons (id, code, discount, tier, max_uses, use_count, expires_at, created_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8)`,
		c.ID(), c.Code(), c.Discount().String(), c.Tier(), pgconv.Int4FromPtr(maxUses),
		c.UseCount(), c.ExpiresAt(), c.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

// Redeem increments use_count only while the coupon is unexpired and under
// its cap, so two concurrent redemptions can never both take the last use.
func (r *CouponRepository) Redeem(ctx context.Context, code string, now time.Time) (*promotion.Coupon, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE coupons
		SET use_count = use_count + 1
		WHERE code = $1
		  AND expires_at > $2
		  AND (max_uses IS NULL OR use_count < max_uses)
		RETURNING `+couponColumns, code, now)
	c, err := scanCoupon(row)
	if err == nil {
		return c, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to redeem coupon", err)
	}

	current, err := scanCoupon(r.db.QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coupon", err)
	}
	if err := current.CheckRedeemable(now); err != nil {
		return nil, err
	}
	// The row changed between the two statements; report it as exhausted.
	return nil, promotion.ErrCouponExhausted
}

func scanCoupon(row pgx.Row) (*promotion.Coupon, error) {
	var (
		id                   uuid.UUID
		code, discount, tier string
		maxUses              pgtype.Int4
		useCount             int32
		expiresAt, createdAt time.Time
	)
	if err := row.Scan(&id, &code, &discount, &tier, &maxUses, &useCount, &expiresAt, &createdAt); err != nil {
		return nil, err
	}
	d, err := pgconv.DecimalFromText(discount)
	if err != nil {
		return nil, err
	}
	var limit *int
	if maxUses.Valid {
		v := int(maxUses.Int32)
		limit = &v
	}
	return promotion.ReconstructCoupon(id, code, d, tier, limit, int(useCount), expiresAt, createdAt), nil
}
