package readstore

import (
	"context"

	"beads-store/internal/domain/pricing"
	"beads-store/internal/infra"
	"beads-store/internal/infra/db"
	"beads-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(db db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

const productsByIDsQuery = `
SELECT id, name, image_url, original_price, manual_discount,
       offer_ids, category, stock_quantity, is_available
FROM products
WHERE id = ANY($1)`

// FindByIDs returns snapshots for the requested products. IDs without a row
// are simply absent from the result; the caller decides whether that blocks.
func (r *ProductReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.ProductSnapshot, error) {
	rows, err := r.db.Query(ctx, productsByIDsQuery, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products by IDs", err)
	}
	defer rows.Close()

	var result []shared.ProductSnapshot
	for rows.Next() {
		var p shared.ProductSnapshot
		if err := rows.Scan(
			&p.ID, &p.Name, &p.ImageURL, &p.OriginalPrice, &p.ManualDiscount,
			&p.OfferIDs, &p.Category, &p.StockQuantity, &p.IsAvailable,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return result, nil
}

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(db db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: db}
}

// FindByIDs returns the offer rules for the given IDs. Window and active
// filtering happens at evaluation time in the pricing calculator.
func (r *OfferReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]pricing.Offer, error) {
	return fetchOffersByIDs(ctx, r.db, ids)
}

const offersByIDsQuery = `
SELECT id, name, discount_type, discount_value, priority,
       is_active, starts_at, ends_at
FROM offers
WHERE id = ANY($1)`

func fetchOffersByIDs(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) ([]pricing.Offer, error) {
	rows, err := dbtx.Query(ctx, offersByIDsQuery, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find offers by IDs", err)
	}
	defer rows.Close()

	var result []pricing.Offer
	for rows.Next() {
		var o pricing.Offer
		var kind string
		if err := rows.Scan(
			&o.ID, &o.Name, &kind, &o.Value, &o.Priority,
			&o.IsActive, &o.StartsAt, &o.EndsAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		o.Kind = pricing.OfferKind(kind)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offer rows", err)
	}
	return result, nil
}
