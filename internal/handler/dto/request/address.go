package request

import "beads-store/internal/usecase/commands"

// AddressPayload is the shared shape of an address in request bodies.
// AddressType defaults to Home and Country to Nepal downstream.
type AddressPayload struct {
	FullName    string  `json:"full_name" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	AddressType string  `json:"address_type"`
	Country     string  `json:"country"`
	Province    string  `json:"province" binding:"required"`
	District    string  `json:"district" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Tole        *string `json:"tole,omitempty"`
	Landmark    *string `json:"landmark,omitempty"`
}

type SaveAddressRequest struct {
	AddressPayload
	IsDefault bool `json:"is_default"`
}

func (r SaveAddressRequest) ToInput() commands.SaveAddressInput {
	return commands.SaveAddressInput{
		FullName:    r.FullName,
		PhoneNumber: r.PhoneNumber,
		AddressType: r.AddressType,
		IsDefault:   r.IsDefault,
		Country:     r.Country,
		Province:    r.Province,
		District:    r.District,
		City:        r.City,
		Tole:        r.Tole,
		Landmark:    r.Landmark,
	}
}

func (p AddressPayload) ToAddressInput() commands.AddressInput {
	return commands.AddressInput{
		FullName:    p.FullName,
		PhoneNumber: p.PhoneNumber,
		AddressType: p.AddressType,
		Country:     p.Country,
		Province:    p.Province,
		District:    p.District,
		City:        p.City,
		Tole:        p.Tole,
		Landmark:    p.Landmark,
	}
}
