package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferKind string

const (
	OfferPercentage OfferKind = "percentage"
	OfferFixed      OfferKind = "fixed"
)

// Offer is a shared promotional discount rule. Products reference offers by
// ID; the rules themselves are resolved at evaluation time, never cached on
// the product.
type Offer struct {
	ID       uuid.UUID
	Name     string
	Kind     OfferKind
	Value    decimal.Decimal
	Priority int32
	IsActive bool
	StartsAt *time.Time
	EndsAt   *time.Time
}

// ActiveAt reports whether the offer may be applied at t.
func (o Offer) ActiveAt(t time.Time) bool {
	if !o.IsActive {
		return false
	}
	if o.StartsAt != nil && t.Before(*o.StartsAt) {
		return false
	}
	if o.EndsAt != nil && t.After(*o.EndsAt) {
		return false
	}
	return true
}

func (o Offer) priceFor(base decimal.Decimal) decimal.Decimal {
	var p decimal.Decimal
	switch o.Kind {
	case OfferPercentage:
		p = base.Mul(decimal.NewFromInt(100).Sub(o.Value)).Div(decimal.NewFromInt(100))
	case OfferFixed:
		p = base.Sub(o.Value)
	default:
		return base
	}
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// Quote is the result of a price computation. DiscountAmount and
// AppliedOfferID are nil when the base price stands unchanged; AppliedOfferID
// is also nil when the manual discount won.
type Quote struct {
	FinalPrice     decimal.Decimal
	DiscountAmount *decimal.Decimal
	AppliedOfferID *uuid.UUID
}

// Compute determines the effective sale price of a product from its base
// price, an optional manual discount, and the candidate offers. The manual
// discount is evaluated first and replaced only by a strictly lower offer
// price; ties between offers go to the higher priority. The result is floored
// at zero and rounded half-up to two decimal places.
//
// Compute is pure: no I/O, no shared state, identical inputs always yield
// identical outputs.
func Compute(basePrice decimal.Decimal, manualDiscount *decimal.Decimal, offers []Offer, now time.Time) Quote {
	if basePrice.LessThanOrEqual(decimal.Zero) {
		return Quote{FinalPrice: basePrice}
	}

	best := basePrice
	if manualDiscount != nil && manualDiscount.IsPositive() {
		best = basePrice.Sub(*manualDiscount)
		if best.IsNegative() {
			best = decimal.Zero
		}
	}

	var applied *Offer
	for i := range offers {
		o := offers[i]
		if !o.ActiveAt(now) {
			continue
		}
		price := o.priceFor(basePrice)
		switch {
		case price.LessThan(best):
			best = price
			applied = &offers[i]
		case price.Equal(best) && applied != nil && o.Priority > applied.Priority:
			applied = &offers[i]
		}
	}

	final := best.Round(2)
	q := Quote{FinalPrice: final}
	if discount := basePrice.Sub(final).Round(2); discount.IsPositive() {
		q.DiscountAmount = &discount
	}
	if applied != nil {
		id := applied.ID
		q.AppliedOfferID = &id
	}
	return q
}
