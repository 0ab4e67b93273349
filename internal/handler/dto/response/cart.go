package response

import (
	"beads-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	ProductID      uuid.UUID        `json:"productId"`
	Name           string           `json:"name"`
	ImageURL       string           `json:"imageUrl"`
	Quantity       int32            `json:"quantity"`
	OriginalPrice  decimal.Decimal  `json:"originalPrice"`
	EffectivePrice decimal.Decimal  `json:"effectivePrice"`
	DiscountAmount *decimal.Decimal `json:"discountAmount,omitempty"`
	AppliedOfferID *uuid.UUID       `json:"appliedOfferId,omitempty"`
	LineTotal      decimal.Decimal  `json:"lineTotal"`
	StockQuantity  int32            `json:"stockQuantity"`
	Unavailable    bool             `json:"unavailable"`
}

type CartResponse struct {
	Items    []CartLineResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

func FromCartView(rm *queries.CartView) *CartResponse {
	items := make([]CartLineResponse, len(rm.Items))
	for i, line := range rm.Items {
		items[i] = CartLineResponse{
			ProductID:      line.ProductID,
			Name:           line.Name,
			ImageURL:       line.ImageURL,
			Quantity:       line.Quantity,
			OriginalPrice:  line.OriginalPrice,
			EffectivePrice: line.EffectivePrice,
			DiscountAmount: line.DiscountAmount,
			AppliedOfferID: line.AppliedOfferID,
			LineTotal:      line.LineTotal,
			StockQuantity:  line.StockQuantity,
			Unavailable:    line.Unavailable,
		}
	}
	return &CartResponse{
		Items:    items,
		Subtotal: rm.Subtotal,
	}
}
