package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "beads-store/internal/handler/dto/request"
	resdto "beads-store/internal/handler/dto/response"
	"beads-store/internal/handler/middleware"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/commands"
	"beads-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Place order
// @Description Assemble an order from the current cart
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 201 {object} resdto.PlaceOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.PlaceOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.orderCommands.PlaceOrder(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, errs.ErrProductUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "A cart item is no longer available"})
		case errors.Is(err, errs.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock for a cart item"})
		case errors.Is(err, errs.ErrInvalidAddressIndex):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Address index out of range"})
		case errors.Is(err, errs.ErrNoAddressAvailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No shipping address available"})
		case errors.Is(err, errs.ErrCouponUsageConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon usage limit reached"})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.PlaceOrderResponse{
		Order:         resdto.FromOrderView(result.Order),
		CouponApplied: result.CouponApplied,
		CouponMessage: result.CouponMessage,
	})
}

// @Summary Get order
// @Description Get one of the caller's orders by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Get user orders
// @Description List the caller's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows"
// @Success 200 {array} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	rows, err := h.orderQueries.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.OrderListResponse, len(rows))
	for i, rm := range rows {
		response[i] = resdto.FromOrderListItem(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Cancel order
// @Description Cancel an order that has not shipped yet
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	if err := h.orderCommands.CancelOrder(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, errs.ErrOrderNotCancellable):
			c.JSON(http.StatusConflict, gin.H{"error": "Order can no longer be cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}

// @Summary List all orders
// @Description Admin listing with optional status filter
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Maximum rows"
// @Success 200 {array} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/orders [get]
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	rows, err := h.orderQueries.ListAll(c.Request.Context(), status, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.OrderListResponse, len(rows))
	for i, rm := range rows {
		response[i] = resdto.FromOrderListItem(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update order status
// @Description Admin transition along the order lifecycle
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderCommands.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, errs.ErrInvalidStatusTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid order status transition"})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

// @Summary Update payment status
// @Description Admin update of the independent payment lifecycle
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdatePaymentStatusRequest true "Payment status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id}/payment-status [patch]
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req reqdto.UpdatePaymentStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderCommands.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus); err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
}
