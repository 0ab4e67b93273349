package writerepo

import (
	"context"

	"beads-store/internal/domain/pricing"
	"beads-store/internal/infra"
	"beads-store/internal/infra/db"

	"github.com/google/uuid"
)

type OfferRepository struct{}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{}
}

const createOfferQuery = `
INSERT INTO offers (id, name, discount_type, discount_value, priority, is_active, starts_at, ends_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *OfferRepository) Create(ctx context.Context, tx db.DBTX, o *pricing.Offer) error {
	_, err := tx.Exec(ctx, createOfferQuery,
		o.ID, o.Name, string(o.Kind), o.Value, o.Priority, o.IsActive, o.StartsAt, o.EndsAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

const setOfferActiveQuery = `
UPDATE offers SET is_active = $2 WHERE id = $1`

func (r *OfferRepository) SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) (int64, error) {
	tag, err := tx.Exec(ctx, setOfferActiveQuery, id, active)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set offer active flag", err)
	}
	return tag.RowsAffected(), nil
}

const offerProductCountQuery = `
SELECT count(*) FROM products WHERE offer_ids @> ARRAY[$1]::uuid[]`

func (r *OfferRepository) ProductCount(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	var count int64
	if err := tx.QueryRow(ctx, offerProductCountQuery, id).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count products for offer", err)
	}
	return count, nil
}

const deleteOfferQuery = `
DELETE FROM offers WHERE id = $1`

func (r *OfferRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, deleteOfferQuery, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete offer", err)
	}
	return tag.RowsAffected(), nil
}
