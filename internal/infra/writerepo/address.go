package writerepo

import (
	"context"

	"beads-store/internal/domain/address"
	"beads-store/internal/infra"
	"beads-store/internal/infra/db"

	"github.com/google/uuid"
)

type AddressRepository struct{}

func NewAddressRepository() *AddressRepository {
	return &AddressRepository{}
}

const createAddressQuery = `
INSERT INTO addresses (
    id, user_id, full_name, phone_number, address_type, is_default,
    country, province, district, city, tole, landmark, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *AddressRepository) Create(ctx context.Context, tx db.DBTX, a *address.Address) error {
	_, err := tx.Exec(ctx, createAddressQuery,
		a.ID, a.UserID, a.FullName, a.PhoneNumber, a.AddressType, a.IsDefault,
		a.Country, a.Province, a.District, a.City, a.Tole, a.Landmark, a.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create address", err)
	}
	return nil
}

const updateAddressQuery = `
UPDATE addresses
SET full_name = $3, phone_number = $4, address_type = $5, is_default = $6,
    country = $7, province = $8, district = $9, city = $10,
    tole = $11, landmark = $12
WHERE id = $1 AND user_id = $2`

func (r *AddressRepository) Update(ctx context.Context, tx db.DBTX, a *address.Address) (int64, error) {
	tag, err := tx.Exec(ctx, updateAddressQuery,
		a.ID, a.UserID, a.FullName, a.PhoneNumber, a.AddressType, a.IsDefault,
		a.Country, a.Province, a.District, a.City, a.Tole, a.Landmark,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update address", err)
	}
	return tag.RowsAffected(), nil
}

const deleteAddressQuery = `
DELETE FROM addresses WHERE id = $1 AND user_id = $2`

func (r *AddressRepository) Delete(ctx context.Context, tx db.DBTX, addressID, userID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, deleteAddressQuery, addressID, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete address", err)
	}
	return tag.RowsAffected(), nil
}

const unsetDefaultAddressesQuery = `
UPDATE addresses SET is_default = false WHERE user_id = $1 AND is_default`

func (r *AddressRepository) UnsetDefaults(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, unsetDefaultAddressesQuery, userID); err != nil {
		return infra.WrapRepoErr("failed to unset default addresses", err)
	}
	return nil
}

// A single statement so concurrent set-default calls for the same user
// serialize on the row locks and the last committer wins with exactly one
// flag set. The count tells whether the target address exists.
const setDefaultAddressQuery = `
WITH flipped AS (
    UPDATE addresses SET is_default = (id = $1)
    WHERE user_id = $2
    RETURNING id
)
SELECT count(*) FROM flipped WHERE id = $1`

func (r *AddressRepository) SetDefault(ctx context.Context, tx db.DBTX, addressID, userID uuid.UUID) (int64, error) {
	var matched int64
	if err := tx.QueryRow(ctx, setDefaultAddressQuery, addressID, userID).Scan(&matched); err != nil {
		return 0, infra.WrapRepoErr("failed to set default address", err)
	}
	return matched, nil
}
