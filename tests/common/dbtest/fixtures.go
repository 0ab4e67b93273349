//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type ProductRow struct {
	ID             uuid.UUID
	Name           string
	OriginalPrice  decimal.Decimal
	ManualDiscount *decimal.Decimal
	OfferIDs       []uuid.UUID
	Category       string
	StockQuantity  int32
	IsAvailable    bool
}

func InsertProduct(t *testing.T, db DBLike, row ProductRow) uuid.UUID {
	t.Helper()

	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.Name == "" {
		row.Name = "Rudraksha Mala"
	}
	if row.OriginalPrice.IsZero() {
		row.OriginalPrice = decimal.NewFromInt(250)
	}
	if row.OfferIDs == nil {
		row.OfferIDs = []uuid.UUID{}
	}

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO products (id, name, original_price, manual_discount, offer_ids, category, stock_quantity, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		row.ID, row.Name, row.OriginalPrice, row.ManualDiscount, row.OfferIDs,
		row.Category, row.StockQuantity, row.IsAvailable)
	require.NoError(t, err)

	return row.ID
}

func InsertOffer(t *testing.T, db DBLike, name, discountType string, value decimal.Decimal, startsAt, endsAt time.Time) uuid.UUID {
	t.Helper()

	offerID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO offers (id, name, discount_type, discount_value, priority, is_active, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, 0, true, $5, $6)`,
		offerID, name, discountType, value, startsAt, endsAt)
	require.NoError(t, err)

	return offerID
}

type CouponRow struct {
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	MinOrderValue *decimal.Decimal
	MaxDiscount   *decimal.Decimal
	UsageLimit    *int32
	UsedCount     int32
	UsagePerUser  int32
	ValidFrom     time.Time
	ValidUntil    time.Time
	IsActive      bool
}

func InsertCoupon(t *testing.T, db DBLike, row CouponRow) {
	t.Helper()

	if row.Code == "" {
		row.Code = "DASHAIN10"
	}
	if row.DiscountType == "" {
		row.DiscountType = "percentage"
		row.DiscountValue = decimal.NewFromInt(10)
	}
	if row.UsagePerUser == 0 {
		row.UsagePerUser = 1
	}
	if row.ValidFrom.IsZero() {
		row.ValidFrom = time.Now().Add(-24 * time.Hour)
	}
	if row.ValidUntil.IsZero() {
		row.ValidUntil = time.Now().Add(24 * time.Hour)
	}

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO coupons (id, code, discount_type, discount_value, min_order_value, max_discount,
		                     usage_limit, used_count, usage_per_user, valid_from, valid_until, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		uuid.New(), row.Code, row.DiscountType, row.DiscountValue, row.MinOrderValue, row.MaxDiscount,
		row.UsageLimit, row.UsedCount, row.UsagePerUser, row.ValidFrom, row.ValidUntil, row.IsActive)
	require.NoError(t, err)
}

func AddCartItem(t *testing.T, db DBLike, userID, productID uuid.UUID, quantity int32) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		userID, productID, quantity)
	require.NoError(t, err)
}

func InsertAddress(t *testing.T, db DBLike, userID uuid.UUID, isDefault bool) uuid.UUID {
	t.Helper()

	addressID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO addresses (id, user_id, full_name, phone_number, address_type, is_default, country, province, district, city)
		VALUES ($1, $2, 'Sita Shrestha', '+9779841000000', 'Home', $3, 'Nepal', 'Bagmati', 'Kathmandu', 'Kathmandu')`,
		addressID, userID, isDefault)
	require.NoError(t, err)

	return addressID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
