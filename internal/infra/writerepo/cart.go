package writerepo

import (
	"context"

	"beads-store/internal/infra"
	"beads-store/internal/infra/db"

	"github.com/google/uuid"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

const upsertCartItemQuery = `
INSERT INTO cart_items (user_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`

// UpsertItem keeps the original position on conflict so re-adding a product
// does not reorder the cart.
func (r *CartRepository) UpsertItem(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID, quantity int32) error {
	if _, err := tx.Exec(ctx, upsertCartItemQuery, userID, productID, quantity); err != nil {
		return infra.WrapRepoErr("failed to upsert cart item", err)
	}
	return nil
}

const setCartQuantityQuery = `
UPDATE cart_items SET quantity = $3 WHERE user_id = $1 AND product_id = $2`

func (r *CartRepository) SetQuantity(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID, quantity int32) (int64, error) {
	tag, err := tx.Exec(ctx, setCartQuantityQuery, userID, productID, quantity)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update cart quantity", err)
	}
	return tag.RowsAffected(), nil
}

const removeCartItemQuery = `
DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

func (r *CartRepository) RemoveItem(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, removeCartItemQuery, userID, productID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to remove cart item", err)
	}
	return tag.RowsAffected(), nil
}

const clearCartQuery = `
DELETE FROM cart_items WHERE user_id = $1`

func (r *CartRepository) Clear(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, clearCartQuery, userID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
