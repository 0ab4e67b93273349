package commands

import (
	"context"
	"time"

	"beads-store/internal/domain/coupon"
	"beads-store/internal/infra"
	"beads-store/internal/pkg/clock"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCouponInput struct {
	Code                 string
	DiscountType         string
	DiscountValue        decimal.Decimal
	MinOrderValue        *decimal.Decimal
	MaxDiscount          *decimal.Decimal
	UsageLimit           *int32
	UsagePerUser         int32
	ValidFrom            time.Time
	ValidUntil           time.Time
	ApplicableCategories []string
	ApplicableProducts   []uuid.UUID
	Description          *string
}

type CouponCommands interface {
	Create(ctx context.Context, input CreateCouponInput) (uuid.UUID, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clock clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clock: clock}
}

func (c *couponCommandsImpl) Create(ctx context.Context, input CreateCouponInput) (uuid.UUID, error) {
	entity, err := coupon.New(
		uuid.New(),
		input.Code,
		input.DiscountType,
		input.DiscountValue,
		input.MinOrderValue,
		input.MaxDiscount,
		input.UsageLimit,
		input.UsagePerUser,
		input.ValidFrom,
		input.ValidUntil,
		input.ApplicableCategories,
		input.ApplicableProducts,
		input.Description,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Coupons().Create(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrCouponCodeTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID, nil
}

func (c *couponCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Coupons().SetActive(ctx, tx.DB(), id, active)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrCouponNotFound
		}
		return nil
	})
}
