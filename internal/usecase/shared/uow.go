package shared

import (
	"context"
	"time"

	"beads-store/internal/domain/address"
	"beads-store/internal/domain/coupon"
	"beads-store/internal/domain/order"
	"beads-store/internal/domain/pricing"
	"beads-store/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Coupons() CouponRepository
	Offers() OfferRepository
	Addresses() AddressRepository
	Carts() CartRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]ProductSnapshot, error)
	ActiveOffersByIDs(ctx context.Context, ids []uuid.UUID) ([]pricing.Offer, error)
	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	CouponUserUsageCount(ctx context.Context, code string, userID uuid.UUID) (int64, error)
	CartItems(ctx context.Context, userID uuid.UUID) ([]CartItemSnapshot, error)
	AddressesByUserID(ctx context.Context, userID uuid.UUID) ([]address.Address, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	// Cancel flips the order to cancelled only while it is still owned by
	// userID and in a cancellable status; it reports the rows affected.
	Cancel(ctx context.Context, tx db.DBTX, orderID, userID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status order.Status) error
	UpdatePaymentStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status order.PaymentStatus) error
}

type CouponRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error
	SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) (int64, error)
	// IncrementUsage bumps used_count only while below usage_limit; zero rows
	// affected means the limit was hit by a concurrent order.
	IncrementUsage(ctx context.Context, tx db.DBTX, code string) (int64, error)
	RecordUsage(ctx context.Context, tx db.DBTX, code string, userID, orderID uuid.UUID, usedAt time.Time) error
}

type OfferRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *pricing.Offer) error
	SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) (int64, error)
	// ProductCount reports how many products reference the offer; deletion is
	// refused while the count is positive.
	ProductCount(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
}

type AddressRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *address.Address) error
	Update(ctx context.Context, tx db.DBTX, a *address.Address) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, addressID, userID uuid.UUID) (int64, error)
	UnsetDefaults(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	SetDefault(ctx context.Context, tx db.DBTX, addressID, userID uuid.UUID) (int64, error)
}

type CartRepository interface {
	// UpsertItem inserts the line or adds quantity to an existing one.
	UpsertItem(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID, quantity int32) error
	SetQuantity(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID, quantity int32) (int64, error)
	RemoveItem(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID) (int64, error)
	Clear(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
