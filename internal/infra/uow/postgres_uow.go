package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"beads-store/internal/domain/address"
	"beads-store/internal/domain/coupon"
	"beads-store/internal/domain/pricing"
	"beads-store/internal/infra/db"
	"beads-store/internal/infra/readstore"
	"beads-store/internal/infra/writerepo"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	orderRepo    shared.OrderRepository
	couponRepo   shared.CouponRepository
	offerRepo    shared.OfferRepository
	addressRepo  shared.AddressRepository
	cartRepo     shared.CartRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = writerepo.NewOrderRepository()
	}
	return t.orderRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = writerepo.NewCouponRepository()
	}
	return t.couponRepo
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offerRepo == nil {
		t.offerRepo = writerepo.NewOfferRepository()
	}
	return t.offerRepo
}

func (t *pgTx) Addresses() shared.AddressRepository {
	if t.addressRepo == nil {
		t.addressRepo = writerepo.NewAddressRepository()
	}
	return t.addressRepo
}

func (t *pgTx) Carts() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = writerepo.NewCartRepository()
	}
	return t.cartRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	productStore *readstore.ProductReadStore
	offerStore   *readstore.OfferReadStore
	couponStore  *readstore.CouponReadStore
	cartStore    *readstore.CartReadStore
	addressStore *readstore.AddressReadStore
	orderStore   *readstore.OrderReadStore
}

func (r *commandReads) ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.ProductSnapshot, error) {
	if r.productStore == nil {
		r.productStore = readstore.NewProductReadStore(r.dbtx)
	}
	return r.productStore.FindByIDs(ctx, ids)
}

func (r *commandReads) ActiveOffersByIDs(ctx context.Context, ids []uuid.UUID) ([]pricing.Offer, error) {
	if r.offerStore == nil {
		r.offerStore = readstore.NewOfferReadStore(r.dbtx)
	}
	return r.offerStore.FindByIDs(ctx, ids)
}

func (r *commandReads) CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	if r.couponStore == nil {
		r.couponStore = readstore.NewCouponReadStore(r.dbtx)
	}
	return r.couponStore.FindByCode(ctx, code)
}

func (r *commandReads) CouponUserUsageCount(ctx context.Context, code string, userID uuid.UUID) (int64, error) {
	if r.couponStore == nil {
		r.couponStore = readstore.NewCouponReadStore(r.dbtx)
	}
	return r.couponStore.UserUsageCount(ctx, code, userID)
}

func (r *commandReads) CartItems(ctx context.Context, userID uuid.UUID) ([]shared.CartItemSnapshot, error) {
	if r.cartStore == nil {
		r.cartStore = readstore.NewCartReadStore(r.dbtx)
	}
	return r.cartStore.ItemsByUserID(ctx, userID)
}

func (r *commandReads) AddressesByUserID(ctx context.Context, userID uuid.UUID) ([]address.Address, error) {
	if r.addressStore == nil {
		r.addressStore = readstore.NewAddressReadStore(r.dbtx)
	}
	return r.addressStore.EntitiesByUserID(ctx, userID)
}

func (r *commandReads) OrderByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	if r.orderStore == nil {
		r.orderStore = readstore.NewOrderReadStore(r.dbtx)
	}
	return r.orderStore.SnapshotByID(ctx, id)
}
