//go:build unit

package queries_test

import (
	"context"
	"testing"

	"beads-store/internal/infra"
	"beads-store/internal/pkg/clock"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/queries"
	"beads-store/tests/common/builder"
	queriesmock "beads-store/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCouponQueries(t *testing.T) (queries.CouponQueries, *queriesmock.MockCouponViewRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockCouponViewRepo(ctrl)
	return queries.NewCouponQueries(repo, clock.NewMockClock(testNow)), repo
}

func TestCouponValidate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	cartTotal := decimal.NewFromInt(500)

	t.Run("valid percentage coupon", func(t *testing.T) {
		coup, err := builder.NewCouponBuilder().BuildDomain() // 10% off
		require.NoError(t, err)

		q, repo := newCouponQueries(t)
		repo.EXPECT().FindByCode(gomock.Any(), coup.Code.String()).Return(coup, nil)
		repo.EXPECT().UserUsageCount(gomock.Any(), coup.Code.String(), userID).Return(int64(0), nil)

		view, err := q.Validate(ctx, coup.Code.String(), cartTotal, &userID)
		require.NoError(t, err)
		assert.True(t, view.Valid)
		assert.True(t, view.DiscountAmount.Equal(decimal.NewFromInt(50)))
		assert.True(t, view.FinalTotal.Equal(decimal.NewFromInt(450)))
	})

	t.Run("unknown code is an invalid outcome, not an error", func(t *testing.T) {
		q, repo := newCouponQueries(t)
		repo.EXPECT().FindByCode(gomock.Any(), "NOPE").
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "coupon not found"))

		view, err := q.Validate(ctx, "NOPE", cartTotal, &userID)
		require.NoError(t, err)
		assert.False(t, view.Valid)
		assert.Equal(t, "Coupon not found", view.Message)
		assert.True(t, view.FinalTotal.Equal(cartTotal))
	})

	t.Run("per-user limit already reached", func(t *testing.T) {
		coup, err := builder.NewCouponBuilder().WithUsagePerUser(1).BuildDomain()
		require.NoError(t, err)

		q, repo := newCouponQueries(t)
		repo.EXPECT().FindByCode(gomock.Any(), coup.Code.String()).Return(coup, nil)
		repo.EXPECT().UserUsageCount(gomock.Any(), coup.Code.String(), userID).Return(int64(1), nil)

		view, err := q.Validate(ctx, coup.Code.String(), cartTotal, &userID)
		require.NoError(t, err)
		assert.False(t, view.Valid)
		assert.Equal(t, "User usage limit reached", view.Message)
	})

	t.Run("anonymous preview skips the per-user gate", func(t *testing.T) {
		coup, err := builder.NewCouponBuilder().WithUsagePerUser(1).BuildDomain()
		require.NoError(t, err)

		q, repo := newCouponQueries(t)
		repo.EXPECT().FindByCode(gomock.Any(), coup.Code.String()).Return(coup, nil)

		view, err := q.Validate(ctx, coup.Code.String(), cartTotal, nil)
		require.NoError(t, err)
		assert.True(t, view.Valid)
	})

	t.Run("database failure surfaces as an error", func(t *testing.T) {
		q, repo := newCouponQueries(t)
		repo.EXPECT().FindByCode(gomock.Any(), "ANY").
			Return(nil, errors.New("connection refused"))

		_, err := q.Validate(ctx, "ANY", cartTotal, &userID)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
