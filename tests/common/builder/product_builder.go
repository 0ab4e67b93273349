//go:build unit

package builder

import (
	"beads-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	snapshot shared.ProductSnapshot
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		snapshot: shared.ProductSnapshot{
			ID:            uuid.New(),
			Name:          "Rudraksha Mala",
			ImageURL:      "https://cdn.example.com/rudraksha.jpg",
			OriginalPrice: decimal.NewFromInt(250),
			Category:      "mala",
			StockQuantity: 10,
			IsAvailable:   true,
		},
	}
}

func (b *ProductBuilder) WithID(id uuid.UUID) *ProductBuilder {
	b.snapshot.ID = id
	return b
}

func (b *ProductBuilder) WithPrice(price decimal.Decimal) *ProductBuilder {
	b.snapshot.OriginalPrice = price
	return b
}

func (b *ProductBuilder) WithManualDiscount(d decimal.Decimal) *ProductBuilder {
	b.snapshot.ManualDiscount = &d
	return b
}

func (b *ProductBuilder) WithOfferIDs(ids ...uuid.UUID) *ProductBuilder {
	b.snapshot.OfferIDs = ids
	return b
}

func (b *ProductBuilder) WithStock(qty int32) *ProductBuilder {
	b.snapshot.StockQuantity = qty
	return b
}

func (b *ProductBuilder) Unavailable() *ProductBuilder {
	b.snapshot.IsAvailable = false
	return b
}

func (b *ProductBuilder) Build() shared.ProductSnapshot {
	return b.snapshot
}
