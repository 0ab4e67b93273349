package readstore

import (
	"context"

	"beads-store/internal/domain/pricing"
	"beads-store/internal/infra"
	"beads-store/internal/infra/db"
	"beads-store/internal/usecase/queries"
	"beads-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(db db.DBTX) *CartReadStore {
	return &CartReadStore{db: db}
}

const cartItemsQuery = `
SELECT product_id, quantity, position
FROM cart_items
WHERE user_id = $1
ORDER BY position`

// ItemsByUserID returns the raw cart lines in insertion order.
func (r *CartReadStore) ItemsByUserID(ctx context.Context, userID uuid.UUID) ([]shared.CartItemSnapshot, error) {
	rows, err := r.db.Query(ctx, cartItemsQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read cart items", err)
	}
	defer rows.Close()

	var items []shared.CartItemSnapshot
	for rows.Next() {
		var item shared.CartItemSnapshot
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.Position); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart item rows", err)
	}
	return items, nil
}

const cartLinesQuery = `
SELECT ci.product_id, ci.quantity,
       p.id, p.name, p.image_url, p.original_price, p.manual_discount,
       p.offer_ids, p.stock_quantity, p.is_available
FROM cart_items ci
LEFT JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = $1
ORDER BY ci.position`

// LinesByUserID joins each cart line with its product and offer rules for the
// read-side cart view. Missing products come back with a nil Product.
func (r *CartReadStore) LinesByUserID(ctx context.Context, userID uuid.UUID) ([]queries.CartLineData, error) {
	rows, err := r.db.Query(ctx, cartLinesQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read cart lines", err)
	}
	defer rows.Close()

	type lineRow struct {
		line     queries.CartLineData
		offerIDs []uuid.UUID
	}

	var lines []lineRow
	offerIDSet := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var (
			productID      uuid.UUID
			quantity       int32
			foundID        *uuid.UUID
			name, imageURL *string
			originalPrice  *decimal.Decimal
			manualDiscount *decimal.Decimal
			offerIDs       []uuid.UUID
			stockQuantity  *int32
			isAvailable    *bool
		)
		if err := rows.Scan(
			&productID, &quantity,
			&foundID, &name, &imageURL, &originalPrice, &manualDiscount,
			&offerIDs, &stockQuantity, &isAvailable,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}

		row := lineRow{
			line: queries.CartLineData{ProductID: productID, Quantity: quantity},
		}
		if foundID != nil {
			row.line.Product = &queries.CartProductData{
				Name:           *name,
				ImageURL:       *imageURL,
				OriginalPrice:  *originalPrice,
				ManualDiscount: manualDiscount,
				StockQuantity:  *stockQuantity,
				IsAvailable:    *isAvailable,
			}
			row.offerIDs = offerIDs
			for _, id := range offerIDs {
				offerIDSet[id] = struct{}{}
			}
		}
		lines = append(lines, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart line rows", err)
	}

	offersByID := make(map[uuid.UUID]pricing.Offer, len(offerIDSet))
	if len(offerIDSet) > 0 {
		ids := make([]uuid.UUID, 0, len(offerIDSet))
		for id := range offerIDSet {
			ids = append(ids, id)
		}
		offers, err := fetchOffersByIDs(ctx, r.db, ids)
		if err != nil {
			return nil, err
		}
		for _, o := range offers {
			offersByID[o.ID] = o
		}
	}

	result := make([]queries.CartLineData, 0, len(lines))
	for _, row := range lines {
		for _, id := range row.offerIDs {
			if o, ok := offersByID[id]; ok {
				row.line.Offers = append(row.line.Offers, o)
			}
		}
		result = append(result, row.line)
	}
	return result, nil
}
