package commands

import (
	"context"
	"time"

	"beads-store/internal/domain/pricing"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOfferInput struct {
	Name          string
	DiscountType  string
	DiscountValue decimal.Decimal
	Priority      int32
	StartsAt      *time.Time
	EndsAt        *time.Time
}

// OfferCommands manages the shared discount rules that products reference by
// ID. Delete is refused while any product still carries the offer.
type OfferCommands interface {
	Create(ctx context.Context, input CreateOfferInput) (uuid.UUID, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type offerCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewOfferCommands(uow shared.UnitOfWork) OfferCommands {
	return &offerCommandsImpl{uow: uow}
}

func (c *offerCommandsImpl) Create(ctx context.Context, input CreateOfferInput) (uuid.UUID, error) {
	entity, err := pricing.NewOffer(
		uuid.New(),
		input.Name,
		input.DiscountType,
		input.DiscountValue,
		input.Priority,
		input.StartsAt,
		input.EndsAt,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Offers().Create(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID, nil
}

func (c *offerCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Offers().SetActive(ctx, tx.DB(), id, active)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrOfferNotFound
		}
		return nil
	})
}

func (c *offerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Offers().ProductCount(ctx, tx.DB(), id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if count > 0 {
			return errs.ErrOfferInUse
		}

		affected, err := tx.Offers().Delete(ctx, tx.DB(), id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrOfferNotFound
		}
		return nil
	})
}
