//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"beads-store/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	id := uuid.New()

	t.Run("valid percentage offer", func(t *testing.T) {
		o, err := pricing.NewOffer(id, "  Tihar Special  ", "percentage", dec("15"), 5, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, id, o.ID)
		assert.Equal(t, "Tihar Special", o.Name)
		assert.Equal(t, pricing.OfferPercentage, o.Kind)
		assert.True(t, o.IsActive)
	})

	t.Run("valid fixed offer with window", func(t *testing.T) {
		start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(7 * 24 * time.Hour)
		o, err := pricing.NewOffer(id, "Flat 100 Off", "fixed", dec("100"), 1, &start, &end)
		require.NoError(t, err)
		assert.Equal(t, pricing.OfferFixed, o.Kind)
		assert.Equal(t, &start, o.StartsAt)
		assert.Equal(t, &end, o.EndsAt)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := pricing.NewOffer(id, "   ", "fixed", dec("50"), 0, nil, nil)
		assert.ErrorIs(t, err, pricing.ErrInvalidOfferName)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := pricing.NewOffer(id, "Mystery", "bogo", dec("50"), 0, nil, nil)
		assert.ErrorIs(t, err, pricing.ErrInvalidOfferKind)
	})

	t.Run("negative value", func(t *testing.T) {
		_, err := pricing.NewOffer(id, "Bad", "fixed", dec("-1"), 0, nil, nil)
		assert.ErrorIs(t, err, pricing.ErrInvalidOfferValue)
	})

	t.Run("percentage above 100", func(t *testing.T) {
		_, err := pricing.NewOffer(id, "Too Generous", "percentage", dec("101"), 0, nil, nil)
		assert.ErrorIs(t, err, pricing.ErrInvalidOfferPercent)
	})

	t.Run("window that never opens", func(t *testing.T) {
		at := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
		_, err := pricing.NewOffer(id, "Zero Window", "fixed", dec("10"), 0, &at, &at)
		assert.ErrorIs(t, err, pricing.ErrInvalidOfferWindow)
	})
}
