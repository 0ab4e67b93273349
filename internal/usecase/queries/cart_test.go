//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"beads-store/internal/domain/pricing"
	"beads-store/internal/pkg/clock"
	"beads-store/internal/usecase/queries"
	queriesmock "beads-store/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newCartQueries(t *testing.T) (queries.CartQueries, *queriesmock.MockCartViewRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockCartViewRepo(ctrl)
	return queries.NewCartQueries(repo, clock.NewMockClock(testNow)), repo
}

func TestCartGet(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("resolves effective prices and subtotal", func(t *testing.T) {
		q, repo := newCartQueries(t)

		offerID := uuid.New()
		start := testNow.Add(-time.Hour)
		end := testNow.Add(time.Hour)
		repo.EXPECT().LinesByUserID(gomock.Any(), userID).Return([]queries.CartLineData{
			{
				ProductID: uuid.New(),
				Quantity:  2,
				Product: &queries.CartProductData{
					Name:          "Rudraksha Mala",
					OriginalPrice: decimal.NewFromInt(250),
					StockQuantity: 10,
					IsAvailable:   true,
				},
				Offers: []pricing.Offer{{
					ID:       offerID,
					Name:     "Dashain Sale",
					Kind:     pricing.OfferPercentage,
					Value:    decimal.NewFromInt(20),
					IsActive: true,
					StartsAt: &start,
					EndsAt:   &end,
				}},
			},
			{
				ProductID: uuid.New(),
				Quantity:  1,
				Product: &queries.CartProductData{
					Name:          "Bodhi Seed Bracelet",
					OriginalPrice: decimal.NewFromInt(100),
					StockQuantity: 3,
					IsAvailable:   true,
				},
			},
		}, nil)

		view, err := q.Get(ctx, userID)
		require.NoError(t, err)
		require.Len(t, view.Items, 2)

		first := view.Items[0]
		assert.True(t, first.EffectivePrice.Equal(decimal.NewFromInt(200))) // 250 - 20%
		assert.True(t, first.LineTotal.Equal(decimal.NewFromInt(400)))
		require.NotNil(t, first.AppliedOfferID)
		assert.Equal(t, offerID, *first.AppliedOfferID)

		assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(500))) // 400 + 100
	})

	t.Run("unavailable lines are annotated and excluded from subtotal", func(t *testing.T) {
		q, repo := newCartQueries(t)

		repo.EXPECT().LinesByUserID(gomock.Any(), userID).Return([]queries.CartLineData{
			{
				ProductID: uuid.New(),
				Quantity:  1,
				Product: &queries.CartProductData{
					Name:          "Lost Bead",
					OriginalPrice: decimal.NewFromInt(999),
					IsAvailable:   false,
				},
			},
			{
				// Product row deleted entirely.
				ProductID: uuid.New(),
				Quantity:  2,
			},
			{
				ProductID: uuid.New(),
				Quantity:  1,
				Product: &queries.CartProductData{
					Name:          "Tulsi Mala",
					OriginalPrice: decimal.NewFromInt(150),
					StockQuantity: 5,
					IsAvailable:   true,
				},
			},
		}, nil)

		view, err := q.Get(ctx, userID)
		require.NoError(t, err)
		require.Len(t, view.Items, 3)

		assert.True(t, view.Items[0].Unavailable)
		assert.Equal(t, "Lost Bead", view.Items[0].Name)
		assert.True(t, view.Items[1].Unavailable)
		assert.Empty(t, view.Items[1].Name)
		assert.False(t, view.Items[2].Unavailable)

		assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(150)))
	})

	t.Run("empty cart", func(t *testing.T) {
		q, repo := newCartQueries(t)
		repo.EXPECT().LinesByUserID(gomock.Any(), userID).Return(nil, nil)

		view, err := q.Get(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.True(t, view.Subtotal.IsZero())
	})
}
