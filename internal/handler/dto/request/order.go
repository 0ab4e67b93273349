package request

import "beads-store/internal/usecase/commands"

// PlaceOrderRequest selects the shipping address by precedence: an explicit
// address wins over address_index, which wins over the saved default.
type PlaceOrderRequest struct {
	CouponCode    *string         `json:"coupon_code,omitempty"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Address       *AddressPayload `json:"address,omitempty"`
	AddressIndex  *int            `json:"address_index,omitempty"`
}

func (r PlaceOrderRequest) ToInput() commands.PlaceOrderInput {
	input := commands.PlaceOrderInput{
		CouponCode:    r.CouponCode,
		PaymentMethod: r.PaymentMethod,
	}
	if r.Address != nil {
		explicit := r.Address.ToAddressInput()
		input.Address.Explicit = &explicit
	}
	input.Address.Index = r.AddressIndex
	return input
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}
