package address

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrMissingField = errors.New("address is missing a required field")

// Address is a saved shipping destination, exclusively owned by one user.
// At most one address per user carries IsDefault; the repository enforces the
// invariant with an unset-all-then-set-one transaction.
type Address struct {
	ID     uuid.UUID
	UserID uuid.UUID

	FullName    string
	PhoneNumber string
	AddressType string
	IsDefault   bool

	Country  string
	Province string
	District string
	City     string
	Tole     *string
	Landmark *string

	CreatedAt time.Time
}

func New(
	id, userID uuid.UUID,
	fullName, phoneNumber, addressType string,
	isDefault bool,
	country, province, district, city string,
	tole, landmark *string,
	now time.Time,
) (*Address, error) {
	if addressType == "" {
		addressType = "Home"
	}
	if country == "" {
		country = "Nepal"
	}

	a := &Address{
		ID:          id,
		UserID:      userID,
		FullName:    strings.TrimSpace(fullName),
		PhoneNumber: strings.TrimSpace(phoneNumber),
		AddressType: addressType,
		IsDefault:   isDefault,
		Country:     country,
		Province:    strings.TrimSpace(province),
		District:    strings.TrimSpace(district),
		City:        strings.TrimSpace(city),
		Tole:        tole,
		Landmark:    landmark,
		CreatedAt:   now,
	}

	if a.FullName == "" || a.PhoneNumber == "" || a.Province == "" || a.District == "" || a.City == "" {
		return nil, ErrMissingField
	}
	return a, nil
}
