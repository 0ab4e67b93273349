package response

import (
	"beads-store/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CouponValidationResponse struct {
	Valid          bool            `json:"valid"`
	Message        string          `json:"message"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalTotal     decimal.Decimal `json:"finalTotal"`
}

func FromCouponValidationView(rm *queries.CouponValidationView) *CouponValidationResponse {
	return &CouponValidationResponse{
		Valid:          rm.Valid,
		Message:        rm.Message,
		DiscountAmount: rm.DiscountAmount,
		FinalTotal:     rm.FinalTotal,
	}
}
