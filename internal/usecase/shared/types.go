package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSnapshot is the write-side product view taken while assembling an
// order. Offer rules are referenced by ID and resolved separately.
type ProductSnapshot struct {
	ID             uuid.UUID
	Name           string
	ImageURL       string
	OriginalPrice  decimal.Decimal
	ManualDiscount *decimal.Decimal
	OfferIDs       []uuid.UUID
	Category       string
	StockQuantity  int32
	IsAvailable    bool
}

// CartItemSnapshot preserves insertion order via Position.
type CartItemSnapshot struct {
	ProductID uuid.UUID
	Quantity  int32
	Position  int32
}

type OrderSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
}
