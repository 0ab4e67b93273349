//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"beads-store/internal/domain/pricing"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/commands"
	"beads-store/internal/usecase/shared"
	sharedmock "beads-store/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type offerCommandMocks struct {
	uow    *sharedmock.MockUnitOfWork
	tx     *sharedmock.MockTx
	offers *sharedmock.MockOfferRepository
}

func newOfferCommands(t *testing.T) (commands.OfferCommands, *offerCommandMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &offerCommandMocks{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		tx:     sharedmock.NewMockTx(ctrl),
		offers: sharedmock.NewMockOfferRepository(ctrl),
	}
	m.tx.EXPECT().Offers().Return(m.offers).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	return commands.NewOfferCommands(m.uow), m
}

func createOfferInput() commands.CreateOfferInput {
	return commands.CreateOfferInput{
		Name:          "Dashain Mala Discount",
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(15),
		Priority:      10,
	}
}

func TestOfferCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		cmd, m := newOfferCommands(t)

		var created *pricing.Offer
		m.offers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, o *pricing.Offer) error {
				created = o
				return nil
			})

		id, err := cmd.Create(ctx, createOfferInput())
		require.NoError(t, err)
		assert.Equal(t, created.ID, id)
		assert.Equal(t, "Dashain Mala Discount", created.Name)
		assert.Equal(t, pricing.OfferPercentage, created.Kind)
		assert.True(t, created.IsActive)
	})

	t.Run("unknown kind", func(t *testing.T) {
		cmd, _ := newOfferCommands(t)

		input := createOfferInput()
		input.DiscountType = "bogo"

		_, err := cmd.Create(ctx, input)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("percentage over 100", func(t *testing.T) {
		cmd, _ := newOfferCommands(t)

		input := createOfferInput()
		input.DiscountValue = decimal.NewFromInt(120)

		_, err := cmd.Create(ctx, input)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("inverted window", func(t *testing.T) {
		cmd, _ := newOfferCommands(t)

		start := testNow.Add(24 * time.Hour)
		end := testNow
		input := createOfferInput()
		input.StartsAt = &start
		input.EndsAt = &end

		_, err := cmd.Create(ctx, input)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestOfferSetActive(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		cmd, m := newOfferCommands(t)
		m.offers.EXPECT().SetActive(gomock.Any(), gomock.Any(), offerID, false).Return(int64(1), nil)

		assert.NoError(t, cmd.SetActive(ctx, offerID, false))
	})

	t.Run("not found", func(t *testing.T) {
		cmd, m := newOfferCommands(t)
		m.offers.EXPECT().SetActive(gomock.Any(), gomock.Any(), offerID, true).Return(int64(0), nil)

		assert.ErrorIs(t, cmd.SetActive(ctx, offerID, true), errs.ErrOfferNotFound)
	})
}

func TestOfferDelete(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	t.Run("success when no product references it", func(t *testing.T) {
		cmd, m := newOfferCommands(t)
		m.offers.EXPECT().ProductCount(gomock.Any(), gomock.Any(), offerID).Return(int64(0), nil)
		m.offers.EXPECT().Delete(gomock.Any(), gomock.Any(), offerID).Return(int64(1), nil)

		assert.NoError(t, cmd.Delete(ctx, offerID))
	})

	t.Run("refused while products carry the offer", func(t *testing.T) {
		cmd, m := newOfferCommands(t)
		m.offers.EXPECT().ProductCount(gomock.Any(), gomock.Any(), offerID).Return(int64(3), nil)

		assert.ErrorIs(t, cmd.Delete(ctx, offerID), errs.ErrOfferInUse)
	})

	t.Run("not found", func(t *testing.T) {
		cmd, m := newOfferCommands(t)
		m.offers.EXPECT().ProductCount(gomock.Any(), gomock.Any(), offerID).Return(int64(0), nil)
		m.offers.EXPECT().Delete(gomock.Any(), gomock.Any(), offerID).Return(int64(0), nil)

		assert.ErrorIs(t, cmd.Delete(ctx, offerID), errs.ErrOfferNotFound)
	})
}
