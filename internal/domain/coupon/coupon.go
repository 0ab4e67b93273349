package coupon

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Coupon is a user-entered code granting a cart-level discount. The mutable
// usage counters (UsedCount, per-user usage records) are incremented only at
// order commit, never during validation.
type Coupon struct {
	ID            uuid.UUID
	Code          Code
	DiscountType  DiscountType
	DiscountValue decimal.Decimal

	MinOrderValue *decimal.Decimal
	MaxDiscount   *decimal.Decimal // percentage coupons only

	UsageLimit   *int32
	UsedCount    int32
	UsagePerUser int32

	ValidFrom  time.Time
	ValidUntil time.Time

	// Empty allow-lists mean unrestricted.
	ApplicableCategories []string
	ApplicableProducts   []uuid.UUID

	IsActive    bool
	Description *string
	CreatedAt   time.Time
}

// New validates the definition of a fresh coupon for the admin create path.
func New(
	id uuid.UUID,
	code string,
	discountType string,
	discountValue decimal.Decimal,
	minOrderValue, maxDiscount *decimal.Decimal,
	usageLimit *int32,
	usagePerUser int32,
	validFrom, validUntil time.Time,
	categories []string,
	products []uuid.UUID,
	description *string,
	now time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	kind, err := NewDiscountType(discountType)
	if err != nil {
		return nil, err
	}
	if err := validateDiscount(kind, discountValue); err != nil {
		return nil, err
	}
	if !validUntil.After(validFrom) {
		return nil, ErrInvalidValidityWindow
	}
	if usagePerUser <= 0 {
		usagePerUser = 1
	}

	return &Coupon{
		ID:                   id,
		Code:                 couponCode,
		DiscountType:         kind,
		DiscountValue:        discountValue,
		MinOrderValue:        minOrderValue,
		MaxDiscount:          maxDiscount,
		UsageLimit:           usageLimit,
		UsagePerUser:         usagePerUser,
		ValidFrom:            validFrom,
		ValidUntil:           validUntil,
		ApplicableCategories: categories,
		ApplicableProducts:   products,
		IsActive:             true,
		Description:          description,
		CreatedAt:            now,
	}, nil
}

// Validation is the outcome of evaluating a coupon against a cart total.
// Failed validations carry the untouched cart total so callers can always
// render a checkout preview.
type Validation struct {
	Valid          bool
	Message        string
	DiscountAmount decimal.Decimal
	FinalTotal     decimal.Decimal
}

func invalid(message string, cartTotal decimal.Decimal) Validation {
	return Validation{
		Valid:          false,
		Message:        message,
		DiscountAmount: decimal.Zero,
		FinalTotal:     cartTotal,
	}
}

// NotFound is the gate-1 outcome; the lookup itself lives with the caller.
func NotFound(cartTotal decimal.Decimal) Validation {
	return invalid("Coupon not found", cartTotal)
}

// Validate runs the eligibility gate chain in order; the first failing gate
// wins. userUsageCount is the number of prior confirmed redemptions by the
// requesting user, nil when no user context is available.
//
// Validate never mutates the coupon; recording a redemption is the order
// commit's job.
func (c *Coupon) Validate(now time.Time, cartTotal decimal.Decimal, userUsageCount *int64) Validation {
	if !c.IsActive {
		return invalid("Coupon is not active", cartTotal)
	}
	if now.Before(c.ValidFrom) || now.After(c.ValidUntil) {
		return invalid("Coupon expired or not yet valid", cartTotal)
	}
	if c.MinOrderValue != nil && cartTotal.LessThan(*c.MinOrderValue) {
		return invalid(fmt.Sprintf("Minimum order value is %s", c.MinOrderValue.String()), cartTotal)
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return invalid("Coupon usage limit reached", cartTotal)
	}
	if userUsageCount != nil && c.UsagePerUser > 0 && *userUsageCount >= int64(c.UsagePerUser) {
		return invalid("User usage limit reached", cartTotal)
	}

	discount := c.discountFor(cartTotal)
	finalTotal := cartTotal.Sub(discount)
	if finalTotal.IsNegative() {
		finalTotal = decimal.Zero
	}

	return Validation{
		Valid:          true,
		Message:        "Coupon applied successfully",
		DiscountAmount: discount.Round(2),
		FinalTotal:     finalTotal.Round(2),
	}
}

func (c *Coupon) discountFor(cartTotal decimal.Decimal) decimal.Decimal {
	switch c.DiscountType {
	case DiscountPercentage:
		discount := cartTotal.Mul(c.DiscountValue).Div(decimal.NewFromInt(100))
		if c.MaxDiscount != nil && discount.GreaterThan(*c.MaxDiscount) {
			discount = *c.MaxDiscount
		}
		return discount
	case DiscountFixed:
		return c.DiscountValue
	default:
		return decimal.Zero
	}
}
