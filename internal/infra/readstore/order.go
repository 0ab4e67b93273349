package readstore

import (
	"context"

	"beads-store/internal/infra"
	"beads-store/internal/infra/db"
	"beads-store/internal/pkg/pgconv"
	"beads-store/internal/usecase/queries"
	"beads-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

const orderViewQuery = `
SELECT id, user_id, items, subtotal, shipping_cost, discount_amount,
       coupon_code, total, shipping_address, payment_method,
       status, payment_status, created_at
FROM orders
WHERE id = $1`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var view queries.OrderView
	err := r.db.QueryRow(ctx, orderViewQuery, id).Scan(
		&view.ID, &view.UserID, &view.Items,
		&view.Subtotal, &view.ShippingCost, &view.DiscountAmount,
		&view.CouponCode, &view.Total, &view.ShippingAddress,
		&view.PaymentMethod, &view.Status, &view.PaymentStatus, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	for i := range view.Items {
		view.Items[i].LineTotal = view.Items[i].UnitPrice.
			Mul(decimal.NewFromInt32(view.Items[i].Quantity)).Round(2)
	}
	return &view, nil
}

const orderListByUserQuery = `
SELECT id, user_id, jsonb_array_length(items), total, payment_method,
       status, payment_status, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, orderListByUserQuery, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	defer rows.Close()

	return collectOrderListItems(rows)
}

const orderListAllQuery = `
SELECT id, user_id, jsonb_array_length(items), total, payment_method,
       status, payment_status, created_at
FROM orders
WHERE $1::text IS NULL OR status = $1
ORDER BY created_at DESC
LIMIT $2`

func (r *OrderReadStore) FindAll(ctx context.Context, status *string, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, orderListAllQuery, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	return collectOrderListItems(rows)
}

const orderSnapshotQuery = `
SELECT id, user_id, status, payment_status, created_at
FROM orders
WHERE id = $1`

// SnapshotByID serves the command side's status guards.
func (r *OrderReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	var snap shared.OrderSnapshot
	err := r.db.QueryRow(ctx, orderSnapshotQuery, id).Scan(
		&snap.ID, &snap.UserID, &snap.Status, &snap.PaymentStatus, &snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order snapshot", err)
	}
	return &snap, nil
}

func collectOrderListItems(rows pgx.Rows) ([]*queries.OrderListItem, error) {
	var result []*queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ItemCount, &item.Total,
			&item.PaymentMethod, &item.Status, &item.PaymentStatus, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order list rows", err)
	}
	return result, nil
}
