//go:build unit

package builder

import (
	"time"

	"beads-store/internal/domain/address"

	"github.com/google/uuid"
)

type AddressBuilder struct {
	entity address.Address
}

func NewAddressBuilder() *AddressBuilder {
	return &AddressBuilder{
		entity: address.Address{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			FullName:    "Sita Shrestha",
			PhoneNumber: "+9779841000000",
			AddressType: "Home",
			Country:     "Nepal",
			Province:    "Bagmati",
			District:    "Kathmandu",
			City:        "Kathmandu",
			CreatedAt:   time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func (b *AddressBuilder) WithUserID(id uuid.UUID) *AddressBuilder {
	b.entity.UserID = id
	return b
}

func (b *AddressBuilder) WithFullName(name string) *AddressBuilder {
	b.entity.FullName = name
	return b
}

func (b *AddressBuilder) Default() *AddressBuilder {
	b.entity.IsDefault = true
	return b
}

func (b *AddressBuilder) CreatedAt(t time.Time) *AddressBuilder {
	b.entity.CreatedAt = t
	return b
}

func (b *AddressBuilder) Build() address.Address {
	return b.entity
}
