//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"beads-store/internal/handler/api"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/commands"
	"beads-store/internal/usecase/queries"
	"beads-store/tests/common/httptest"
	commandsmock "beads-store/tests/mock/commands"
	queriesmock "beads-store/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	userID       uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", "customer")
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.PlaceOrder)
	s.router.GET("/orders", authMiddleware, s.handler.GetUserOrders)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
	s.router.POST("/orders/:id/cancel", authMiddleware, s.handler.CancelOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func placeOrderBody() map[string]any {
	return map[string]any{
		"payment_method": "cod",
		"address": map[string]any{
			"full_name":    "Sita Shrestha",
			"phone_number": "+9779841000000",
			"province":     "Bagmati",
			"district":     "Kathmandu",
			"city":         "Kathmandu",
		},
	}
}

// ================================================================================
// PlaceOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestPlaceOrder() {
	url := "/orders"

	s.Run("success: returns 201 Created with coupon outcome", func() {
		result := &commands.PlaceOrderResult{
			Order:         &queries.OrderView{ID: uuid.New(), UserID: s.userID, Status: "pending"},
			CouponApplied: false,
			CouponMessage: "Coupon not found",
		}
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), s.userID, gomock.Any()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, placeOrderBody(), "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "couponApplied")
		s.Contains(rec.Body.String(), "Coupon not found")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, placeOrderBody(), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 when payment_method is missing", func() {
		body := placeOrderBody()
		delete(body, "payment_method")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"empty cart", errs.ErrEmptyCart, http.StatusBadRequest},
		{"unavailable product", errs.ErrProductUnavailable, http.StatusConflict},
		{"insufficient stock", errs.ErrInsufficientStock, http.StatusConflict},
		{"invalid address index", errs.ErrInvalidAddressIndex, http.StatusBadRequest},
		{"no address available", errs.ErrNoAddressAvailable, http.StatusBadRequest},
		{"coupon usage conflict", errs.ErrCouponUsageConflict, http.StatusConflict},
		{"domain validation", errs.ErrDomainValidation, http.StatusUnprocessableEntity},
	}

	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), s.userID, gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, placeOrderBody(), "bearer-token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

// ================================================================================
// GetOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetOrder() {
	orderID := uuid.New()

	s.Run("success: returns the order view", func() {
		view := &queries.OrderView{ID: orderID, UserID: s.userID, Status: "pending"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, orderID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), orderID.String())
	})

	s.Run("error: 404 for missing or foreign order", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, orderID).Return(nil, errs.ErrOrderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// GetUserOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetUserOrders() {
	s.Run("success: returns the list", func() {
		rows := []*queries.OrderListItem{
			{ID: uuid.New(), UserID: s.userID, ItemCount: 2, Status: "pending"},
			{ID: uuid.New(), UserID: s.userID, ItemCount: 1, Status: "delivered"},
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 0).Return(rows, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: forwards the limit query", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 5).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=5", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// CancelOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/cancel"

	s.Run("success", func() {
		s.mockCommands.EXPECT().CancelOrder(gomock.Any(), s.userID, orderID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 when not found", func() {
		s.mockCommands.EXPECT().CancelOrder(gomock.Any(), s.userID, orderID).Return(errs.ErrOrderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 409 when past the cancellable window", func() {
		s.mockCommands.EXPECT().CancelOrder(gomock.Any(), s.userID, orderID).Return(errs.ErrOrderNotCancellable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
