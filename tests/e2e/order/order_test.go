//go:build e2e

package order_test

import (
	"context"
	"net/http"
	"testing"

	"beads-store/internal/handler/dto/request"
	"beads-store/internal/handler/dto/response"
	"beads-store/internal/pkg/jwt"
	"beads-store/tests/common/authtest"
	"beads-store/tests/common/dbtest"
	"beads-store/tests/common/httptest"
	"beads-store/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const ordersURL = "/api/orders"

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

func (s *OrderSuite) placeOrderRequest() request.PlaceOrderRequest {
	return request.PlaceOrderRequest{
		PaymentMethod: "cod",
		Address: &request.AddressPayload{
			FullName:    "Sita Shrestha",
			PhoneNumber: "+9779841000000",
			Province:    "Bagmati",
			District:    "Kathmandu",
			City:        "Kathmandu",
		},
	}
}

// =============================================================================
// TestPlaceOrder - Checkout flow against a real database
// =============================================================================

func (s *OrderSuite) TestPlaceOrder() {
	s.Run("Normal case: cart checks out with frozen totals", func() {
		t := s.T()

		userID := uuid.New()
		productID := dbtest.InsertProduct(t, s.DB, dbtest.ProductRow{
			Name:          "Rudraksha Mala",
			OriginalPrice: decimal.NewFromInt(250),
			StockQuantity: 10,
			IsAvailable:   true,
		})
		dbtest.AddCartItem(t, s.DB, userID, productID, 2)

		token := authtest.IssueToken(t, s.Config, userID, jwt.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.placeOrderRequest(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var placed response.PlaceOrderResponse
		httptest.DecodeJSON(t, w, &placed)
		require.NotNil(t, placed.Order)
		require.False(t, placed.CouponApplied)

		expected := &response.OrderResponse{
			UserID: userID,
			Items: []response.OrderLineResponse{{
				ProductID: productID,
				Name:      "Rudraksha Mala",
				UnitPrice: decimal.NewFromInt(250),
				Quantity:  2,
				LineTotal: decimal.NewFromInt(500),
			}},
			Subtotal:       decimal.NewFromInt(500),
			ShippingCost:   decimal.NewFromInt(100),
			DiscountAmount: decimal.Zero,
			Total:          decimal.NewFromInt(600),
			ShippingAddress: response.ShippingAddressResponse{
				FullName:    "Sita Shrestha",
				PhoneNumber: "+9779841000000",
				AddressType: "Home",
				Country:     "Nepal",
				Province:    "Bagmati",
				District:    "Kathmandu",
				City:        "Kathmandu",
			},
			PaymentMethod: "cod",
			Status:        "pending",
			PaymentStatus: "unpaid",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.OrderResponse{}, "ID", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, placed.Order, opts...); diff != "" {
			t.Errorf("order response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: coupon discount is applied and usage recorded", func() {
		t := s.T()

		userID := uuid.New()
		productID := dbtest.InsertProduct(t, s.DB, dbtest.ProductRow{
			OriginalPrice: decimal.NewFromInt(250),
			StockQuantity: 10,
			IsAvailable:   true,
		})
		dbtest.AddCartItem(t, s.DB, userID, productID, 2)
		dbtest.InsertCoupon(t, s.DB, dbtest.CouponRow{
			Code:          "DASHAIN10",
			DiscountType:  "percentage",
			DiscountValue: decimal.NewFromInt(10),
			IsActive:      true,
		})

		token := authtest.IssueToken(t, s.Config, userID, jwt.RoleCustomer)

		reqBody := s.placeOrderRequest()
		code := "DASHAIN10"
		reqBody.CouponCode = &code

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var placed response.PlaceOrderResponse
		httptest.DecodeJSON(t, w, &placed)
		require.True(t, placed.CouponApplied)
		require.True(t, placed.Order.DiscountAmount.Equal(decimal.NewFromInt(50)))
		require.True(t, placed.Order.Total.Equal(decimal.NewFromInt(550)))

		ctx := context.Background()
		var usedCount int32
		err := s.DB.QueryRow(ctx, "SELECT used_count FROM coupons WHERE code = $1", code).Scan(&usedCount)
		require.NoError(t, err)
		require.Equal(t, int32(1), usedCount)

		var usageRows int
		err = s.DB.QueryRow(ctx,
			"SELECT count(*) FROM coupon_usages WHERE coupon_code = $1 AND user_id = $2", code, userID).Scan(&usageRows)
		require.NoError(t, err)
		require.Equal(t, 1, usageRows)
	})

	s.Run("Normal case: invalid coupon degrades to no discount", func() {
		t := s.T()

		userID := uuid.New()
		productID := dbtest.InsertProduct(t, s.DB, dbtest.ProductRow{
			OriginalPrice: decimal.NewFromInt(250),
			StockQuantity: 10,
			IsAvailable:   true,
		})
		dbtest.AddCartItem(t, s.DB, userID, productID, 1)

		token := authtest.IssueToken(t, s.Config, userID, jwt.RoleCustomer)

		reqBody := s.placeOrderRequest()
		code := "NOSUCHCODE"
		reqBody.CouponCode = &code

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var placed response.PlaceOrderResponse
		httptest.DecodeJSON(t, w, &placed)
		require.False(t, placed.CouponApplied)
		require.Equal(t, "Coupon not found", placed.CouponMessage)
		require.True(t, placed.Order.DiscountAmount.IsZero())
	})

	s.Run("Normal case: default saved address used when none supplied", func() {
		t := s.T()

		userID := uuid.New()
		productID := dbtest.InsertProduct(t, s.DB, dbtest.ProductRow{
			OriginalPrice: decimal.NewFromInt(250),
			StockQuantity: 5,
			IsAvailable:   true,
		})
		dbtest.AddCartItem(t, s.DB, userID, productID, 1)
		dbtest.InsertAddress(t, s.DB, userID, false)
		dbtest.InsertAddress(t, s.DB, userID, true)

		token := authtest.IssueToken(t, s.Config, userID, jwt.RoleCustomer)

		reqBody := request.PlaceOrderRequest{PaymentMethod: "esewa"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var placed response.PlaceOrderResponse
		httptest.DecodeJSON(t, w, &placed)
		require.Equal(t, "Sita Shrestha", placed.Order.ShippingAddress.FullName)
	})

	s.Run("Error case: empty cart is rejected", func() {
		t := s.T()

		token := authtest.IssueToken(t, s.Config, uuid.New(), jwt.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.placeOrderRequest(), token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: unauthenticated request is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.placeOrderRequest(), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestOrderLifecycle - Read back and cancel
// =============================================================================

func (s *OrderSuite) TestOrderLifecycle() {
	s.Run("Normal case: placed order can be fetched, listed and cancelled", func() {
		t := s.T()

		userID := uuid.New()
		productID := dbtest.InsertProduct(t, s.DB, dbtest.ProductRow{
			OriginalPrice: decimal.NewFromInt(250),
			StockQuantity: 10,
			IsAvailable:   true,
		})
		dbtest.AddCartItem(t, s.DB, userID, productID, 2)

		token := authtest.IssueToken(t, s.Config, userID, jwt.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.placeOrderRequest(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var placed response.PlaceOrderResponse
		httptest.DecodeJSON(t, w, &placed)
		orderID := placed.Order.ID.String()

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+orderID, nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)
		var rows []response.OrderListResponse
		httptest.DecodeJSON(t, lw, &rows)
		require.Len(t, rows, 1)
		require.Equal(t, 1, rows[0].ItemCount)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+orderID+"/cancel", nil, token)
		require.Equal(t, http.StatusOK, cw.Code)

		dw = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+orderID, nil, token)
		require.Equal(t, http.StatusOK, dw.Code)
		var detail response.OrderResponse
		httptest.DecodeJSON(t, dw, &detail)
		require.Equal(t, "cancelled", detail.Status)
	})

	s.Run("Error case: another user's order is hidden", func() {
		t := s.T()

		userID := uuid.New()
		productID := dbtest.InsertProduct(t, s.DB, dbtest.ProductRow{
			OriginalPrice: decimal.NewFromInt(100),
			StockQuantity: 5,
			IsAvailable:   true,
		})
		dbtest.AddCartItem(t, s.DB, userID, productID, 1)

		ownerToken := authtest.IssueToken(t, s.Config, userID, jwt.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.placeOrderRequest(), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var placed response.PlaceOrderResponse
		httptest.DecodeJSON(t, w, &placed)

		strangerToken := authtest.IssueToken(t, s.Config, uuid.New(), jwt.RoleCustomer)
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+placed.Order.ID.String(), nil, strangerToken)
		require.Equal(t, http.StatusNotFound, dw.Code)
	})
}
