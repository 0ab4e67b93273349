//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"beads-store/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func percentOffer(id uuid.UUID, value string, priority int32) pricing.Offer {
	return pricing.Offer{
		ID:       id,
		Kind:     pricing.OfferPercentage,
		Value:    dec(value),
		Priority: priority,
		IsActive: true,
	}
}

func fixedOffer(id uuid.UUID, value string, priority int32) pricing.Offer {
	return pricing.Offer{
		ID:       id,
		Kind:     pricing.OfferFixed,
		Value:    dec(value),
		Priority: priority,
		IsActive: true,
	}
}

func TestCompute(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no discounts leaves base price unchanged", func(t *testing.T) {
		q := pricing.Compute(dec("1000"), nil, nil, now)
		assert.True(t, q.FinalPrice.Equal(dec("1000")))
		assert.Nil(t, q.DiscountAmount)
		assert.Nil(t, q.AppliedOfferID)
	})

	t.Run("degenerate base price is returned as-is", func(t *testing.T) {
		offers := []pricing.Offer{percentOffer(uuid.New(), "50", 0)}

		q := pricing.Compute(decimal.Zero, decPtr("10"), offers, now)
		assert.True(t, q.FinalPrice.Equal(decimal.Zero))
		assert.Nil(t, q.DiscountAmount)
		assert.Nil(t, q.AppliedOfferID)

		q = pricing.Compute(dec("-5"), nil, offers, now)
		assert.True(t, q.FinalPrice.Equal(dec("-5")))
	})

	t.Run("fixed offer beats weaker percentage offer", func(t *testing.T) {
		a := percentOffer(uuid.New(), "15", 0)
		b := fixedOffer(uuid.New(), "200", 5)

		// 1000-200=800 < 1000*0.85=850
		q := pricing.Compute(dec("1000"), nil, []pricing.Offer{a, b}, now)
		assert.True(t, q.FinalPrice.Equal(dec("800")))
		require.NotNil(t, q.DiscountAmount)
		assert.True(t, q.DiscountAmount.Equal(dec("200")))
		require.NotNil(t, q.AppliedOfferID)
		assert.Equal(t, b.ID, *q.AppliedOfferID)
	})

	t.Run("manual discount wins when lower", func(t *testing.T) {
		a := percentOffer(uuid.New(), "10", 0)

		q := pricing.Compute(dec("1000"), decPtr("300"), []pricing.Offer{a}, now)
		assert.True(t, q.FinalPrice.Equal(dec("700")))
		require.NotNil(t, q.DiscountAmount)
		assert.True(t, q.DiscountAmount.Equal(dec("300")))
		assert.Nil(t, q.AppliedOfferID, "manual discount carries no offer id")
	})

	t.Run("manual discount holds ties against offers", func(t *testing.T) {
		a := fixedOffer(uuid.New(), "300", 10)

		q := pricing.Compute(dec("1000"), decPtr("300"), []pricing.Offer{a}, now)
		assert.True(t, q.FinalPrice.Equal(dec("700")))
		assert.Nil(t, q.AppliedOfferID, "equal offer price must not displace the manual discount")
	})

	t.Run("offer ties broken by priority descending", func(t *testing.T) {
		low := fixedOffer(uuid.New(), "250", 1)
		high := percentOffer(uuid.New(), "25", 9)

		q := pricing.Compute(dec("1000"), nil, []pricing.Offer{low, high}, now)
		assert.True(t, q.FinalPrice.Equal(dec("750")))
		require.NotNil(t, q.AppliedOfferID)
		assert.Equal(t, high.ID, *q.AppliedOfferID)
	})

	t.Run("inactive and out-of-window offers are skipped", func(t *testing.T) {
		inactive := fixedOffer(uuid.New(), "900", 0)
		inactive.IsActive = false

		past := now.Add(-48 * time.Hour)
		expired := fixedOffer(uuid.New(), "800", 0)
		expired.EndsAt = &past

		future := now.Add(48 * time.Hour)
		notYet := fixedOffer(uuid.New(), "700", 0)
		notYet.StartsAt = &future

		q := pricing.Compute(dec("1000"), nil, []pricing.Offer{inactive, expired, notYet}, now)
		assert.True(t, q.FinalPrice.Equal(dec("1000")))
		assert.Nil(t, q.AppliedOfferID)
	})

	t.Run("price floors at zero", func(t *testing.T) {
		a := fixedOffer(uuid.New(), "1500", 0)

		q := pricing.Compute(dec("1000"), nil, []pricing.Offer{a}, now)
		assert.True(t, q.FinalPrice.Equal(decimal.Zero))
		require.NotNil(t, q.DiscountAmount)
		assert.True(t, q.DiscountAmount.Equal(dec("1000")))
	})

	t.Run("result rounds half-up to two decimals", func(t *testing.T) {
		a := percentOffer(uuid.New(), "33", 0)

		// 999.99 * 0.67 = 669.9933 -> 669.99
		q := pricing.Compute(dec("999.99"), nil, []pricing.Offer{a}, now)
		assert.True(t, q.FinalPrice.Equal(dec("669.99")))

		// 10.01 * 0.75 = 7.5075 -> 7.51
		b := percentOffer(uuid.New(), "25", 0)
		q = pricing.Compute(dec("10.01"), nil, []pricing.Offer{b}, now)
		assert.True(t, q.FinalPrice.Equal(dec("7.51")))
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		offers := []pricing.Offer{
			percentOffer(uuid.New(), "15", 3),
			fixedOffer(uuid.New(), "120", 7),
		}
		first := pricing.Compute(dec("850.50"), decPtr("40"), offers, now)
		for range 100 {
			again := pricing.Compute(dec("850.50"), decPtr("40"), offers, now)
			assert.True(t, first.FinalPrice.Equal(again.FinalPrice))
			assert.Equal(t, first.AppliedOfferID, again.AppliedOfferID)
		}
	})

	t.Run("result never exceeds base and never goes negative", func(t *testing.T) {
		bases := []string{"0.01", "1", "49.99", "100", "999.99", "100000"}
		offers := []pricing.Offer{
			percentOffer(uuid.New(), "99", 1),
			fixedOffer(uuid.New(), "50", 2),
			percentOffer(uuid.New(), "0", 3),
		}
		for _, b := range bases {
			base := dec(b)
			q := pricing.Compute(base, decPtr("10"), offers, now)
			assert.True(t, q.FinalPrice.LessThanOrEqual(base), "base %s", b)
			assert.False(t, q.FinalPrice.IsNegative(), "base %s", b)
		}
	})
}
