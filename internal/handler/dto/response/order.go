package response

import (
	"time"

	"beads-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderLineResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"imageUrl"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int32           `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type ShippingAddressResponse struct {
	FullName    string  `json:"fullName"`
	PhoneNumber string  `json:"phoneNumber"`
	AddressType string  `json:"addressType"`
	Country     string  `json:"country"`
	Province    string  `json:"province"`
	District    string  `json:"district"`
	City        string  `json:"city"`
	Tole        *string `json:"tole,omitempty"`
	Landmark    *string `json:"landmark,omitempty"`
}

type OrderResponse struct {
	ID              uuid.UUID               `json:"id"`
	UserID          uuid.UUID               `json:"userId"`
	Items           []OrderLineResponse     `json:"items"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
	ShippingCost    decimal.Decimal         `json:"shippingCost"`
	DiscountAmount  decimal.Decimal         `json:"discountAmount"`
	CouponCode      *string                 `json:"couponCode,omitempty"`
	Total           decimal.Decimal         `json:"total"`
	ShippingAddress ShippingAddressResponse `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod"`
	Status          string                  `json:"status"`
	PaymentStatus   string                  `json:"paymentStatus"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// PlaceOrderResponse reports the coupon outcome alongside the order; an
// invalid coupon does not fail the purchase.
type PlaceOrderResponse struct {
	Order         *OrderResponse `json:"order"`
	CouponApplied bool           `json:"couponApplied"`
	CouponMessage string         `json:"couponMessage,omitempty"`
}

type OrderListResponse struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	ItemCount     int             `json:"itemCount"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	items := make([]OrderLineResponse, len(rm.Items))
	for i, line := range rm.Items {
		items[i] = OrderLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			ImageURL:  line.ImageURL,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		}
	}

	return &OrderResponse{
		ID:             rm.ID,
		UserID:         rm.UserID,
		Items:          items,
		Subtotal:       rm.Subtotal,
		ShippingCost:   rm.ShippingCost,
		DiscountAmount: rm.DiscountAmount,
		CouponCode:     rm.CouponCode,
		Total:          rm.Total,
		ShippingAddress: ShippingAddressResponse{
			FullName:    rm.ShippingAddress.FullName,
			PhoneNumber: rm.ShippingAddress.PhoneNumber,
			AddressType: rm.ShippingAddress.AddressType,
			Country:     rm.ShippingAddress.Country,
			Province:    rm.ShippingAddress.Province,
			District:    rm.ShippingAddress.District,
			City:        rm.ShippingAddress.City,
			Tole:        rm.ShippingAddress.Tole,
			Landmark:    rm.ShippingAddress.Landmark,
		},
		PaymentMethod: rm.PaymentMethod,
		Status:        rm.Status,
		PaymentStatus: rm.PaymentStatus,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromOrderListItem(rm *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:            rm.ID,
		UserID:        rm.UserID,
		ItemCount:     rm.ItemCount,
		Total:         rm.Total,
		PaymentMethod: rm.PaymentMethod,
		Status:        rm.Status,
		PaymentStatus: rm.PaymentStatus,
		CreatedAt:     rm.CreatedAt,
	}
}
