package writerepo

import (
	"context"
	"time"

	"beads-store/internal/domain/coupon"
	"beads-store/internal/infra"
	"beads-store/internal/infra/db"

	"github.com/google/uuid"
)

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

const createCouponQuery = `
INSERT INTO coupons (
    id, code, discount_type, discount_value, min_order_value, max_discount,
    usage_limit, used_count, usage_per_user, valid_from, valid_until,
    applicable_categories, applicable_products, is_active, description,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10, $11, $12, $13, $14, $15)`

func (r *CouponRepository) Create(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error {
	categories := c.ApplicableCategories
	if categories == nil {
		categories = []string{}
	}
	products := c.ApplicableProducts
	if products == nil {
		products = []uuid.UUID{}
	}

	_, err := tx.Exec(ctx, createCouponQuery,
		c.ID, c.Code.String(), c.DiscountType.String(), c.DiscountValue,
		c.MinOrderValue, c.MaxDiscount,
		c.UsageLimit, c.UsagePerUser, c.ValidFrom, c.ValidUntil,
		categories, products, c.IsActive, c.Description, c.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

const setCouponActiveQuery = `
UPDATE coupons SET is_active = $2 WHERE id = $1`

func (r *CouponRepository) SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) (int64, error) {
	tag, err := tx.Exec(ctx, setCouponActiveQuery, id, active)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set coupon active flag", err)
	}
	return tag.RowsAffected(), nil
}

const incrementCouponUsageQuery = `
UPDATE coupons
SET used_count = used_count + 1
WHERE code = $1
  AND (usage_limit IS NULL OR used_count < usage_limit)`

// IncrementUsage is the serialization point for the global usage limit: the
// conditional update either claims a slot or affects zero rows.
func (r *CouponRepository) IncrementUsage(ctx context.Context, tx db.DBTX, code string) (int64, error) {
	tag, err := tx.Exec(ctx, incrementCouponUsageQuery, code)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	return tag.RowsAffected(), nil
}

const recordCouponUsageQuery = `
INSERT INTO coupon_usages (id, coupon_code, user_id, order_id, used_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *CouponRepository) RecordUsage(ctx context.Context, tx db.DBTX, code string, userID, orderID uuid.UUID, usedAt time.Time) error {
	_, err := tx.Exec(ctx, recordCouponUsageQuery, uuid.New(), code, userID, orderID, usedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record coupon usage", err)
	}
	return nil
}
