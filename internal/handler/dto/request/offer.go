package request

import (
	"time"

	"beads-store/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateOfferRequest struct {
	Name          string          `json:"name" binding:"required"`
	DiscountType  string          `json:"discount_type" binding:"required"`
	DiscountValue decimal.Decimal `json:"discount_value" binding:"required"`
	Priority      int32           `json:"priority"`
	StartsAt      *time.Time      `json:"starts_at,omitempty"`
	EndsAt        *time.Time      `json:"ends_at,omitempty"`
}

func (r CreateOfferRequest) ToInput() commands.CreateOfferInput {
	return commands.CreateOfferInput{
		Name:          r.Name,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		Priority:      r.Priority,
		StartsAt:      r.StartsAt,
		EndsAt:        r.EndsAt,
	}
}

type SetOfferActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
