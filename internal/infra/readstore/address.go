package readstore

import (
	"context"

	"beads-store/internal/domain/address"
	"beads-store/internal/infra"
	"beads-store/internal/infra/db"
	"beads-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type AddressReadStore struct {
	db db.DBTX
}

func NewAddressReadStore(db db.DBTX) *AddressReadStore {
	return &AddressReadStore{db: db}
}

const addressesByUserQuery = `
SELECT id, user_id, full_name, phone_number, address_type, is_default,
       country, province, district, city, tole, landmark, created_at
FROM addresses
WHERE user_id = $1
ORDER BY created_at, id`

// EntitiesByUserID serves the command side's index-based resolution, which
// depends on the stable insertion order.
func (r *AddressReadStore) EntitiesByUserID(ctx context.Context, userID uuid.UUID) ([]address.Address, error) {
	rows, err := r.db.Query(ctx, addressesByUserQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read addresses", err)
	}
	defer rows.Close()

	var result []address.Address
	for rows.Next() {
		var a address.Address
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.FullName, &a.PhoneNumber, &a.AddressType,
			&a.IsDefault, &a.Country, &a.Province, &a.District, &a.City,
			&a.Tole, &a.Landmark, &a.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan address", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read address rows", err)
	}
	return result, nil
}

func (r *AddressReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.AddressView, error) {
	entities, err := r.EntitiesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*queries.AddressView, len(entities))
	for i, a := range entities {
		result[i] = &queries.AddressView{
			ID:          a.ID,
			FullName:    a.FullName,
			PhoneNumber: a.PhoneNumber,
			AddressType: a.AddressType,
			IsDefault:   a.IsDefault,
			Country:     a.Country,
			Province:    a.Province,
			District:    a.District,
			City:        a.City,
			Tole:        a.Tole,
			Landmark:    a.Landmark,
			CreatedAt:   a.CreatedAt,
		}
	}
	return result, nil
}
