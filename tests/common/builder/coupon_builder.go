//go:build unit

package builder

import (
	"time"

	"beads-store/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	code          string
	discountType  string
	discountValue decimal.Decimal
	minOrderValue *decimal.Decimal
	maxDiscount   *decimal.Decimal
	usageLimit    *int32
	usedCount     int32
	usagePerUser  int32
	validFrom     time.Time
	validUntil    time.Time
	isActive      bool
	now           time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return &CouponBuilder{
		code:          "DASHAIN10",
		discountType:  "percentage",
		discountValue: decimal.NewFromInt(10),
		usagePerUser:  1,
		validFrom:     now.Add(-24 * time.Hour),
		validUntil:    now.Add(24 * time.Hour),
		isActive:      true,
		now:           now,
	}
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.code = code
	return b
}

func (b *CouponBuilder) WithFixedDiscount(amount decimal.Decimal) *CouponBuilder {
	b.discountType = "fixed"
	b.discountValue = amount
	return b
}

func (b *CouponBuilder) WithMinOrderValue(v decimal.Decimal) *CouponBuilder {
	b.minOrderValue = &v
	return b
}

func (b *CouponBuilder) WithMaxDiscount(v decimal.Decimal) *CouponBuilder {
	b.maxDiscount = &v
	return b
}

func (b *CouponBuilder) WithUsageLimit(limit, used int32) *CouponBuilder {
	b.usageLimit = &limit
	b.usedCount = used
	return b
}

func (b *CouponBuilder) WithUsagePerUser(n int32) *CouponBuilder {
	b.usagePerUser = n
	return b
}

func (b *CouponBuilder) Expired() *CouponBuilder {
	b.validFrom = b.now.Add(-48 * time.Hour)
	b.validUntil = b.now.Add(-24 * time.Hour)
	return b
}

func (b *CouponBuilder) Inactive() *CouponBuilder {
	b.isActive = false
	return b
}

// Now returns the reference instant the validity window is built around.
func (b *CouponBuilder) Now() time.Time {
	return b.now
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	c, err := coupon.New(
		uuid.New(), b.code, b.discountType, b.discountValue,
		b.minOrderValue, b.maxDiscount,
		b.usageLimit, b.usagePerUser,
		b.validFrom, b.validUntil,
		nil, nil, nil,
		b.now,
	)
	if err != nil {
		return nil, err
	}
	c.UsedCount = b.usedCount
	c.IsActive = b.isActive
	return c, nil
}
