package readstore

import (
	"context"

	"beads-store/internal/domain/coupon"
	"beads-store/internal/infra"
	"beads-store/internal/infra/db"
	"beads-store/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(db db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

const couponByCodeQuery = `
SELECT id, code, discount_type, discount_value, min_order_value, max_discount,
       usage_limit, used_count, usage_per_user, valid_from, valid_until,
       applicable_categories, applicable_products, is_active, description,
       created_at
FROM coupons
WHERE code = $1`

// FindByCode looks the code up exactly as entered; codes are case-sensitive.
func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	var (
		c            coupon.Coupon
		rawCode      string
		discountType string
	)
	err := r.db.QueryRow(ctx, couponByCodeQuery, code).Scan(
		&c.ID, &rawCode, &discountType, &c.DiscountValue,
		&c.MinOrderValue, &c.MaxDiscount,
		&c.UsageLimit, &c.UsedCount, &c.UsagePerUser,
		&c.ValidFrom, &c.ValidUntil,
		&c.ApplicableCategories, &c.ApplicableProducts,
		&c.IsActive, &c.Description, &c.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	c.Code = coupon.Code(rawCode)
	c.DiscountType = coupon.DiscountType(discountType)
	return &c, nil
}

const couponUserUsageQuery = `
SELECT count(*)
FROM coupon_usages
WHERE coupon_code = $1 AND user_id = $2`

func (r *CouponReadStore) UserUsageCount(ctx context.Context, code string, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, couponUserUsageQuery, code, userID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count coupon usages", err)
	}
	return count, nil
}
