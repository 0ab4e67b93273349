package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type OrderLineView struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type ShippingAddressView struct {
	FullName    string  `json:"full_name"`
	PhoneNumber string  `json:"phone_number"`
	AddressType string  `json:"address_type"`
	Country     string  `json:"country"`
	Province    string  `json:"province"`
	District    string  `json:"district"`
	City        string  `json:"city"`
	Tole        *string `json:"tole,omitempty"`
	Landmark    *string `json:"landmark,omitempty"`
}

type OrderView struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	Items           []OrderLineView     `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	ShippingCost    decimal.Decimal     `json:"shipping_cost"`
	DiscountAmount  decimal.Decimal     `json:"discount_amount"`
	CouponCode      *string             `json:"coupon_code,omitempty"`
	Total           decimal.Decimal     `json:"total"`
	ShippingAddress ShippingAddressView `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	CreatedAt       time.Time           `json:"created_at"`
}

type OrderListItem struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	ItemCount     int             `json:"item_count"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CartLineView carries the effective price at read time. Unavailable reports
// lines whose product is gone or disabled; their price fields are zero and the
// line is excluded from Subtotal.
type CartLineView struct {
	ProductID      uuid.UUID        `json:"product_id"`
	Name           string           `json:"name"`
	ImageURL       string           `json:"image_url"`
	Quantity       int32            `json:"quantity"`
	OriginalPrice  decimal.Decimal  `json:"original_price"`
	EffectivePrice decimal.Decimal  `json:"effective_price"`
	DiscountAmount *decimal.Decimal `json:"discount_amount,omitempty"`
	AppliedOfferID *uuid.UUID       `json:"applied_offer_id,omitempty"`
	LineTotal      decimal.Decimal  `json:"line_total"`
	StockQuantity  int32            `json:"stock_quantity"`
	Unavailable    bool             `json:"unavailable"`
}

type CartView struct {
	UserID   uuid.UUID       `json:"user_id"`
	Items    []CartLineView  `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CouponValidationView struct {
	Valid          bool            `json:"valid"`
	Message        string          `json:"message"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalTotal     decimal.Decimal `json:"final_total"`
}

type AddressView struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	AddressType string    `json:"address_type"`
	IsDefault   bool      `json:"is_default"`
	Country     string    `json:"country"`
	Province    string    `json:"province"`
	District    string    `json:"district"`
	City        string    `json:"city"`
	Tole        *string   `json:"tole,omitempty"`
	Landmark    *string   `json:"landmark,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
