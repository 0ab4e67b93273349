package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Product errors
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrInsufficientStock  = errors.New("insufficient stock")

	// Cart errors
	ErrEmptyCart       = errors.New("cart is empty")
	ErrCartItemMissing = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// Order errors
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderNotCancellable     = errors.New("order can no longer be cancelled")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")

	// Coupon errors
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponCodeTaken     = errors.New("coupon code already exists")
	ErrCouponUsageConflict = errors.New("coupon usage limit reached")

	// Offer errors
	ErrOfferNotFound = errors.New("offer not found")
	ErrOfferInUse    = errors.New("offer is applied to products")

	// Address errors
	ErrAddressNotFound     = errors.New("address not found")
	ErrInvalidAddressIndex = errors.New("address index out of range")
	ErrNoAddressAvailable  = errors.New("no shipping address available")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
