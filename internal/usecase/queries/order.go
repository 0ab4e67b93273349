package queries

import (
	"context"

	"beads-store/internal/infra"
	"beads-store/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultOrderListLimit = 50

type OrderQueries interface {
	// GetByID enforces ownership; foreign orders surface as not found.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*OrderView, error)
	// GetByIDSystem bypasses the ownership check for read-after-write and
	// admin access.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*OrderListItem, error)
	ListAll(ctx context.Context, status *string, limit int) ([]*OrderListItem, error)
}

type OrderViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindAll(ctx context.Context, status *string, limit int32) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*OrderView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actorID {
		return nil, errs.ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*OrderListItem, error) {
	if limit <= 0 {
		limit = defaultOrderListLimit
	}
	rows, err := q.repo.FindByUserID(ctx, userID, int32(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}

func (q *orderQueriesImpl) ListAll(ctx context.Context, status *string, limit int) ([]*OrderListItem, error) {
	if limit <= 0 {
		limit = defaultOrderListLimit
	}
	rows, err := q.repo.FindAll(ctx, status, int32(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}
