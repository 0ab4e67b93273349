//go:build e2e

package order_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"beads-store/internal/handler/dto/response"
	"beads-store/internal/pkg/jwt"
	"beads-store/tests/common/authtest"
	"beads-store/tests/common/dbtest"
	"beads-store/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TestCouponUsageLimitUnderLoad - concurrent checkouts racing for one coupon
// =============================================================================

func (s *OrderSuite) TestCouponUsageLimitUnderLoad() {
	s.Run("Normal case: usage_limit 1 coupon is consumed by exactly one of the racing checkouts", func() {
		t := s.T()

		const racers = 4

		productID := dbtest.InsertProduct(t, s.DB, dbtest.ProductRow{
			OriginalPrice: decimal.NewFromInt(250),
			StockQuantity: 100,
			IsAvailable:   true,
		})

		limit := int32(1)
		dbtest.InsertCoupon(t, s.DB, dbtest.CouponRow{
			Code:          "LASTONE",
			DiscountType:  "percentage",
			DiscountValue: decimal.NewFromInt(10),
			UsageLimit:    &limit,
			IsActive:      true,
		})

		tokens := make([]string, racers)
		for i := range racers {
			userID := uuid.New()
			dbtest.AddCartItem(t, s.DB, userID, productID, 1)
			tokens[i] = authtest.IssueToken(t, s.Config, userID, jwt.RoleCustomer)
		}

		code := "LASTONE"
		reqBody := s.placeOrderRequest()
		reqBody.CouponCode = &code

		type result struct {
			status  int
			applied bool
		}
		results := make([]result, racers)

		var wg sync.WaitGroup
		for i := range racers {
			wg.Add(1)
			go func(i int, subT *testing.T) {
				defer wg.Done()
				w := httptest.PerformRequest(subT, s.Router, http.MethodPost, ordersURL, reqBody, tokens[i])
				results[i].status = w.Code
				if w.Code == http.StatusCreated {
					var placed response.PlaceOrderResponse
					httptest.DecodeJSON(subT, w, &placed)
					results[i].applied = placed.CouponApplied
				}
			}(i, t)
		}
		wg.Wait()

		// The losers either hit the commit-time conflict (409) or saw the
		// exhausted coupon during validation and checked out without it (201,
		// no discount). Either way only one checkout gets the coupon.
		appliedCount := 0
		for _, r := range results {
			require.Contains(t, []int{http.StatusCreated, http.StatusConflict}, r.status)
			if r.applied {
				appliedCount++
			}
		}
		require.Equal(t, 1, appliedCount, "exactly one checkout may consume the coupon")

		ctx := context.Background()
		var usedCount int32
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT used_count FROM coupons WHERE code = $1", code).Scan(&usedCount))
		require.Equal(t, limit, usedCount)

		var usageRows int
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT count(*) FROM coupon_usages WHERE coupon_code = $1", code).Scan(&usageRows))
		require.Equal(t, 1, usageRows)
	})
}
