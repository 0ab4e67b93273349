package writerepo

import (
	"context"
	"encoding/json"

	"beads-store/internal/domain/order"
	"beads-store/internal/infra"
	"beads-store/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const createOrderQuery = `
INSERT INTO orders (
    id, user_id, items, subtotal, shipping_cost, discount_amount,
    coupon_code, total, shipping_address, payment_method,
    status, payment_status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err, infra.KindDBFailure)
	}
	shippingAddress, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return infra.WrapRepoErr("failed to encode shipping address", err, infra.KindDBFailure)
	}

	_, err = tx.Exec(ctx, createOrderQuery,
		o.ID, o.UserID, items, o.Subtotal, o.ShippingCost, o.DiscountAmount,
		o.CouponCode, o.Total, shippingAddress, o.PaymentMethod.String(),
		o.Status.String(), o.PaymentStatus.String(), o.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

const cancelOrderQuery = `
UPDATE orders
SET status = 'cancelled'
WHERE id = $1 AND user_id = $2 AND status IN ('pending', 'processing')`

// Cancel is conditional on ownership and a cancellable status so concurrent
// shipment updates cannot be overridden.
func (r *OrderRepository) Cancel(ctx context.Context, tx db.DBTX, orderID, userID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, cancelOrderQuery, orderID, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel order", err)
	}
	return tag.RowsAffected(), nil
}

const updateOrderStatusQuery = `
UPDATE orders SET status = $2 WHERE id = $1`

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status order.Status) error {
	if _, err := tx.Exec(ctx, updateOrderStatusQuery, orderID, status.String()); err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	return nil
}

const updatePaymentStatusQuery = `
UPDATE orders SET payment_status = $2 WHERE id = $1`

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status order.PaymentStatus) error {
	if _, err := tx.Exec(ctx, updatePaymentStatusQuery, orderID, status.String()); err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	return nil
}
