package response

import (
	"time"

	"beads-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type AddressResponse struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"fullName"`
	PhoneNumber string    `json:"phoneNumber"`
	AddressType string    `json:"addressType"`
	IsDefault   bool      `json:"isDefault"`
	Country     string    `json:"country"`
	Province    string    `json:"province"`
	District    string    `json:"district"`
	City        string    `json:"city"`
	Tole        *string   `json:"tole,omitempty"`
	Landmark    *string   `json:"landmark,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromAddressView(rm *queries.AddressView) *AddressResponse {
	return &AddressResponse{
		ID:          rm.ID,
		FullName:    rm.FullName,
		PhoneNumber: rm.PhoneNumber,
		AddressType: rm.AddressType,
		IsDefault:   rm.IsDefault,
		Country:     rm.Country,
		Province:    rm.Province,
		District:    rm.District,
		City:        rm.City,
		Tole:        rm.Tole,
		Landmark:    rm.Landmark,
		CreatedAt:   rm.CreatedAt,
	}
}
