package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidValidityWindow  = errors.New("valid_until must be after valid_from")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is a unique, case-sensitive coupon key such as SAVE25.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (d DiscountType) String() string {
	return string(d)
}

func NewDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercentage, DiscountFixed:
		return DiscountType(s), nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func validateDiscount(kind DiscountType, value decimal.Decimal) error {
	if value.IsNegative() {
		return ErrInvalidDiscountAmount
	}
	if kind == DiscountPercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidDiscountPercent
	}
	return nil
}
