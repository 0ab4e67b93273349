package queries

import (
	"context"

	"beads-store/internal/domain/coupon"
	"beads-store/internal/infra"
	"beads-store/internal/pkg/clock"
	"beads-store/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponViewRepo interface {
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	UserUsageCount(ctx context.Context, code string, userID uuid.UUID) (int64, error)
}

type CouponQueries interface {
	// Validate previews a coupon against a cart total. It is idempotent and
	// records nothing; an unknown code is a normal invalid outcome, not an
	// error.
	Validate(ctx context.Context, code string, cartTotal decimal.Decimal, userID *uuid.UUID) (*CouponValidationView, error)
}

type couponQueriesImpl struct {
	repo  CouponViewRepo
	clock clock.Clock
}

func NewCouponQueries(repo CouponViewRepo, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{repo: repo, clock: clock}
}

func (q *couponQueriesImpl) Validate(ctx context.Context, code string, cartTotal decimal.Decimal, userID *uuid.UUID) (*CouponValidationView, error) {
	c, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return toValidationView(coupon.NotFound(cartTotal)), nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var usageCount *int64
	if userID != nil {
		n, err := q.repo.UserUsageCount(ctx, code, *userID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		usageCount = &n
	}

	return toValidationView(c.Validate(q.clock.Now(), cartTotal, usageCount)), nil
}

func toValidationView(v coupon.Validation) *CouponValidationView {
	return &CouponValidationView{
		Valid:          v.Valid,
		Message:        v.Message,
		DiscountAmount: v.DiscountAmount,
		FinalTotal:     v.FinalTotal,
	}
}
