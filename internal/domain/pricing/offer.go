package pricing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOfferName    = errors.New("offer name must not be blank")
	ErrInvalidOfferKind    = errors.New("offer kind must be percentage or fixed")
	ErrInvalidOfferValue   = errors.New("offer value cannot be negative")
	ErrInvalidOfferPercent = errors.New("percentage offer must be between 0 and 100")
	ErrInvalidOfferWindow  = errors.New("ends_at must be after starts_at")
)

func NewOfferKind(s string) (OfferKind, error) {
	switch OfferKind(s) {
	case OfferPercentage, OfferFixed:
		return OfferKind(s), nil
	default:
		return "", ErrInvalidOfferKind
	}
}

// NewOffer validates the definition of a fresh offer for the admin create
// path. An offer starts active; the optional window bounds when it applies.
func NewOffer(
	id uuid.UUID,
	name string,
	kind string,
	value decimal.Decimal,
	priority int32,
	startsAt, endsAt *time.Time,
) (*Offer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidOfferName
	}
	offerKind, err := NewOfferKind(kind)
	if err != nil {
		return nil, err
	}
	if value.IsNegative() {
		return nil, ErrInvalidOfferValue
	}
	if offerKind == OfferPercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidOfferPercent
	}
	if startsAt != nil && endsAt != nil && !endsAt.After(*startsAt) {
		return nil, ErrInvalidOfferWindow
	}

	return &Offer{
		ID:       id,
		Name:     name,
		Kind:     offerKind,
		Value:    value,
		Priority: priority,
		IsActive: true,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}, nil
}
