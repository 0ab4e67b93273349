package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems          = errors.New("order requires at least one line item")
	ErrInvalidLine      = errors.New("line item quantity must be positive")
	ErrNegativeAmount   = errors.New("order amounts cannot be negative")
	ErrMissingRecipient = errors.New("shipping address requires recipient details")
)

// Line is a frozen copy of a cart line taken at order-creation time. Name,
// image and unit price are snapshots; later product mutations never reach
// a persisted order.
type Line struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt32(l.Quantity))
}

// ShippingAddress is the frozen destination copy embedded in the order.
type ShippingAddress struct {
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

// Order is created once and immutable afterwards except for the two
// controlled lifecycle fields, Status and PaymentStatus. Total is frozen at
// creation: subtotal + shipping - discount, floored at zero, and is never
// recomputed from live product or coupon state.
type Order struct {
	ID     uuid.UUID
	UserID uuid.UUID

	Items []Line

	Subtotal       decimal.Decimal
	ShippingCost   decimal.Decimal
	DiscountAmount decimal.Decimal
	CouponCode     *string
	Total          decimal.Decimal

	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod

	Status        Status
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}

func New(
	id, userID uuid.UUID,
	items []Line,
	subtotal, shippingCost, discountAmount decimal.Decimal,
	couponCode *string,
	shippingAddress ShippingAddress,
	paymentMethod PaymentMethod,
	now time.Time,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, line := range items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidLine
		}
		if line.UnitPrice.IsNegative() {
			return nil, ErrNegativeAmount
		}
	}
	if subtotal.IsNegative() || shippingCost.IsNegative() || discountAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if shippingAddress.FullName == "" || shippingAddress.PhoneNumber == "" {
		return nil, ErrMissingRecipient
	}

	total := subtotal.Add(shippingCost).Sub(discountAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return &Order{
		ID:              id,
		UserID:          userID,
		Items:           items,
		Subtotal:        subtotal.Round(2),
		ShippingCost:    shippingCost.Round(2),
		DiscountAmount:  discountAmount.Round(2),
		CouponCode:      couponCode,
		Total:           total.Round(2),
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		Status:          StatusPending,
		PaymentStatus:   PaymentUnpaid,
		CreatedAt:       now,
	}, nil
}
