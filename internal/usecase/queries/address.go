package queries

import (
	"context"

	"beads-store/internal/pkg/errs"

	"github.com/google/uuid"
)

type AddressViewRepo interface {
	// FindByUserID returns the user's addresses in insertion order.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*AddressView, error)
}

type AddressQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*AddressView, error)
}

type addressQueriesImpl struct {
	repo AddressViewRepo
}

func NewAddressQueries(repo AddressViewRepo) AddressQueries {
	return &addressQueriesImpl{repo: repo}
}

func (q *addressQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*AddressView, error) {
	rows, err := q.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}
