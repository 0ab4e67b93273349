package order

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Status is the order lifecycle field. Delivered and cancelled are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Cancellable reports whether the owning user may still cancel the order.
func (s Status) Cancellable() bool {
	return s == StatusPending || s == StatusProcessing
}

// Terminal statuses accept no further transitions.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusDelivered, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// PaymentStatus is a lifecycle field independent of Status.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func NewPaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentPaid, PaymentFailed, PaymentRefunded:
		return PaymentStatus(s), nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "cod"
	PaymentMethodEsewa        PaymentMethod = "esewa"
	PaymentMethodKhalti       PaymentMethod = "khalti"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func NewPaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodCOD, PaymentMethodEsewa, PaymentMethodKhalti, PaymentMethodBankTransfer:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}
