package request

import (
	"time"

	"beads-store/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ValidateCouponRequest struct {
	Code      string          `json:"code" binding:"required"`
	CartTotal decimal.Decimal `json:"cart_total" binding:"required"`
}

type CreateCouponRequest struct {
	Code                 string           `json:"code" binding:"required"`
	DiscountType         string           `json:"discount_type" binding:"required"`
	DiscountValue        decimal.Decimal  `json:"discount_value" binding:"required"`
	MinOrderValue        *decimal.Decimal `json:"min_order_value,omitempty"`
	MaxDiscount          *decimal.Decimal `json:"max_discount,omitempty"`
	UsageLimit           *int32           `json:"usage_limit,omitempty"`
	UsagePerUser         int32            `json:"usage_per_user"`
	ValidFrom            time.Time        `json:"valid_from" binding:"required"`
	ValidUntil           time.Time        `json:"valid_until" binding:"required"`
	ApplicableCategories []string         `json:"applicable_categories,omitempty"`
	ApplicableProducts   []uuid.UUID      `json:"applicable_products,omitempty"`
	Description          *string          `json:"description,omitempty"`
}

func (r CreateCouponRequest) ToInput() commands.CreateCouponInput {
	return commands.CreateCouponInput{
		Code:                 r.Code,
		DiscountType:         r.DiscountType,
		DiscountValue:        r.DiscountValue,
		MinOrderValue:        r.MinOrderValue,
		MaxDiscount:          r.MaxDiscount,
		UsageLimit:           r.UsageLimit,
		UsagePerUser:         r.UsagePerUser,
		ValidFrom:            r.ValidFrom,
		ValidUntil:           r.ValidUntil,
		ApplicableCategories: r.ApplicableCategories,
		ApplicableProducts:   r.ApplicableProducts,
		Description:          r.Description,
	}
}

type SetCouponActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
