package commands

import (
	"context"

	"beads-store/internal/domain/address"
	"beads-store/internal/pkg/clock"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type SaveAddressInput struct {
	FullName    string
	PhoneNumber string
	AddressType string
	IsDefault   bool
	Country     string
	Province    string
	District    string
	City        string
	Tole        *string
	Landmark    *string
}

type AddressCommands interface {
	Add(ctx context.Context, userID uuid.UUID, input SaveAddressInput) (uuid.UUID, error)
	Update(ctx context.Context, userID, addressID uuid.UUID, input SaveAddressInput) error
	Delete(ctx context.Context, userID, addressID uuid.UUID) error
	SetDefault(ctx context.Context, userID, addressID uuid.UUID) error
}

type addressCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAddressCommands(uow shared.UnitOfWork, clock clock.Clock) AddressCommands {
	return &addressCommandsImpl{uow: uow, clock: clock}
}

func (c *addressCommandsImpl) Add(ctx context.Context, userID uuid.UUID, input SaveAddressInput) (uuid.UUID, error) {
	entity, err := address.New(
		uuid.New(), userID,
		input.FullName, input.PhoneNumber, input.AddressType,
		input.IsDefault,
		input.Country, input.Province, input.District, input.City,
		input.Tole, input.Landmark,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if entity.IsDefault {
			if err := tx.Addresses().UnsetDefaults(ctx, tx.DB(), userID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		if err := tx.Addresses().Create(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID, nil
}

func (c *addressCommandsImpl) Update(ctx context.Context, userID, addressID uuid.UUID, input SaveAddressInput) error {
	entity, err := address.New(
		addressID, userID,
		input.FullName, input.PhoneNumber, input.AddressType,
		input.IsDefault,
		input.Country, input.Province, input.District, input.City,
		input.Tole, input.Landmark,
		c.clock.Now(),
	)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if entity.IsDefault {
			if err := tx.Addresses().UnsetDefaults(ctx, tx.DB(), userID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		affected, err := tx.Addresses().Update(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrAddressNotFound
		}
		return nil
	})
}

func (c *addressCommandsImpl) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Addresses().Delete(ctx, tx.DB(), addressID, userID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrAddressNotFound
		}
		return nil
	})
}

// SetDefault keeps the one-default invariant: the repository flips every flag
// for the user in one statement, so concurrent calls leave a single default.
func (c *addressCommandsImpl) SetDefault(ctx context.Context, userID, addressID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Addresses().SetDefault(ctx, tx.DB(), addressID, userID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrAddressNotFound
		}
		return nil
	})
}
