//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"beads-store/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func i32Ptr(v int32) *int32 { return &v }
func i64Ptr(v int64) *int64 { return &v }

var now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func validCoupon() *coupon.Coupon {
	return &coupon.Coupon{
		ID:            uuid.New(),
		Code:          coupon.Code("SAVE25"),
		DiscountType:  coupon.DiscountPercentage,
		DiscountValue: dec("25"),
		MinOrderValue: decPtr("500"),
		MaxDiscount:   decPtr("300"),
		UsagePerUser:  1,
		ValidFrom:     now.Add(-24 * time.Hour),
		ValidUntil:    now.Add(24 * time.Hour),
		IsActive:      true,
	}
}

func TestValidate(t *testing.T) {
	t.Run("percentage discount capped at max_discount", func(t *testing.T) {
		c := validCoupon()

		v := c.Validate(now, dec("2000"), nil)
		require.True(t, v.Valid)
		assert.Equal(t, "Coupon applied successfully", v.Message)
		// min(2000*25%, 300) = 300
		assert.True(t, v.DiscountAmount.Equal(dec("300")))
		assert.True(t, v.FinalTotal.Equal(dec("1700")))
	})

	t.Run("percentage discount below cap", func(t *testing.T) {
		c := validCoupon()

		v := c.Validate(now, dec("800"), nil)
		require.True(t, v.Valid)
		assert.True(t, v.DiscountAmount.Equal(dec("200")))
		assert.True(t, v.FinalTotal.Equal(dec("600")))
	})

	t.Run("fixed discount clamps final total at zero", func(t *testing.T) {
		c := validCoupon()
		c.DiscountType = coupon.DiscountFixed
		c.DiscountValue = dec("1000")
		c.MinOrderValue = nil

		v := c.Validate(now, dec("400"), nil)
		require.True(t, v.Valid)
		assert.True(t, v.FinalTotal.Equal(decimal.Zero))
	})

	t.Run("inactive coupon", func(t *testing.T) {
		c := validCoupon()
		c.IsActive = false

		v := c.Validate(now, dec("2000"), nil)
		assert.False(t, v.Valid)
		assert.Equal(t, "Coupon is not active", v.Message)
		assert.True(t, v.DiscountAmount.IsZero())
		assert.True(t, v.FinalTotal.Equal(dec("2000")), "failed validation leaves the total untouched")
	})

	t.Run("outside validity window", func(t *testing.T) {
		c := validCoupon()

		v := c.Validate(c.ValidUntil.Add(time.Hour), dec("2000"), nil)
		assert.False(t, v.Valid)
		assert.Equal(t, "Coupon expired or not yet valid", v.Message)

		v = c.Validate(c.ValidFrom.Add(-time.Hour), dec("2000"), nil)
		assert.False(t, v.Valid)
		assert.Equal(t, "Coupon expired or not yet valid", v.Message)
	})

	t.Run("below minimum order value", func(t *testing.T) {
		c := validCoupon()

		v := c.Validate(now, dec("499.99"), nil)
		assert.False(t, v.Valid)
		assert.Equal(t, "Minimum order value is 500", v.Message)
		assert.True(t, v.FinalTotal.Equal(dec("499.99")))
	})

	t.Run("global usage limit reached", func(t *testing.T) {
		c := validCoupon()
		c.UsageLimit = i32Ptr(100)
		c.UsedCount = 100

		v := c.Validate(now, dec("2000"), nil)
		assert.False(t, v.Valid)
		assert.Equal(t, "Coupon usage limit reached", v.Message)
	})

	t.Run("per-user limit reached", func(t *testing.T) {
		c := validCoupon()

		v := c.Validate(now, dec("2000"), i64Ptr(1))
		assert.False(t, v.Valid)
		assert.Equal(t, "User usage limit reached", v.Message)
	})

	t.Run("per-user limit skipped without user context", func(t *testing.T) {
		c := validCoupon()

		v := c.Validate(now, dec("2000"), nil)
		assert.True(t, v.Valid)
	})

	t.Run("gate order: active gate fires before window gate", func(t *testing.T) {
		c := validCoupon()
		c.IsActive = false

		v := c.Validate(c.ValidUntil.Add(time.Hour), dec("2000"), nil)
		assert.Equal(t, "Coupon is not active", v.Message)
	})

	t.Run("validation does not mutate the coupon", func(t *testing.T) {
		c := validCoupon()
		c.UsageLimit = i32Ptr(10)
		before := c.UsedCount

		for range 5 {
			c.Validate(now, dec("2000"), i64Ptr(0))
		}
		assert.Equal(t, before, c.UsedCount)
	})
}

func TestNew(t *testing.T) {
	valid := func() (string, string, decimal.Decimal, time.Time, time.Time) {
		return "NEWYEAR2025", "fixed", dec("100"), now, now.Add(30 * 24 * time.Hour)
	}

	t.Run("valid definition", func(t *testing.T) {
		code, kind, value, from, until := valid()
		c, err := coupon.New(uuid.New(), code, kind, value, nil, nil, i32Ptr(50), 2, from, until, nil, nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, coupon.Code("NEWYEAR2025"), c.Code)
		assert.Equal(t, "NEWYEAR2025", c.Code.String())
		assert.Equal(t, "fixed", c.DiscountType.String())
		assert.True(t, c.IsActive)
		assert.EqualValues(t, 2, c.UsagePerUser)
	})

	t.Run("per-user limit defaults to one", func(t *testing.T) {
		code, kind, value, from, until := valid()
		c, err := coupon.New(uuid.New(), code, kind, value, nil, nil, nil, 0, from, until, nil, nil, nil, now)
		require.NoError(t, err)
		assert.EqualValues(t, 1, c.UsagePerUser)
	})

	t.Run("rejects malformed code", func(t *testing.T) {
		_, kind, value, from, until := valid()
		_, err := coupon.New(uuid.New(), "no spaces!", kind, value, nil, nil, nil, 1, from, until, nil, nil, nil, now)
		assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode)
	})

	t.Run("rejects unknown discount type", func(t *testing.T) {
		code, _, value, from, until := valid()
		_, err := coupon.New(uuid.New(), code, "bogo", value, nil, nil, nil, 1, from, until, nil, nil, nil, now)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountType)
	})

	t.Run("rejects percentage above 100", func(t *testing.T) {
		code, _, _, from, until := valid()
		_, err := coupon.New(uuid.New(), code, "percentage", dec("101"), nil, nil, nil, 1, from, until, nil, nil, nil, now)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)
	})

	t.Run("rejects inverted validity window", func(t *testing.T) {
		code, kind, value, from, _ := valid()
		_, err := coupon.New(uuid.New(), code, kind, value, nil, nil, nil, 1, from, from.Add(-time.Hour), nil, nil, nil, now)
		assert.ErrorIs(t, err, coupon.ErrInvalidValidityWindow)
	})
}
