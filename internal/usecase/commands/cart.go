package commands

import (
	"context"

	"beads-store/internal/infra"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartCommands interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error
	UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCartCommands(uow shared.UnitOfWork) CartCommands {
	return &cartCommandsImpl{uow: uow}
}

// AddItem adds quantity to an existing line or inserts a new one. The stock
// check covers the merged quantity but reserves nothing.
func (c *cartCommandsImpl) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error {
	if quantity <= 0 {
		return errs.ErrInvalidQuantity
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		product, err := c.availableProduct(ctx, tx, productID)
		if err != nil {
			return err
		}

		merged := quantity
		items, err := tx.Reads().CartItems(ctx, userID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for _, item := range items {
			if item.ProductID == productID {
				merged += item.Quantity
				break
			}
		}
		if merged > product.StockQuantity {
			return errs.ErrInsufficientStock
		}

		if err := tx.Carts().UpsertItem(ctx, tx.DB(), userID, productID, quantity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *cartCommandsImpl) UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error {
	if quantity <= 0 {
		return errs.ErrInvalidQuantity
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		product, err := c.availableProduct(ctx, tx, productID)
		if err != nil {
			return err
		}
		if quantity > product.StockQuantity {
			return errs.ErrInsufficientStock
		}

		affected, err := tx.Carts().SetQuantity(ctx, tx.DB(), userID, productID, quantity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrCartItemMissing
		}
		return nil
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Carts().RemoveItem(ctx, tx.DB(), userID, productID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.ErrCartItemMissing
		}
		return nil
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Carts().Clear(ctx, tx.DB(), userID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *cartCommandsImpl) availableProduct(ctx context.Context, tx shared.Tx, productID uuid.UUID) (*shared.ProductSnapshot, error) {
	products, err := tx.Reads().ProductsByIDs(ctx, []uuid.UUID{productID})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(products) == 0 {
		return nil, errs.ErrProductNotFound
	}
	product := products[0]
	if !product.IsAvailable {
		return nil, errs.ErrProductUnavailable
	}
	return &product, nil
}
