package api

import (
	"errors"
	"net/http"

	reqdto "beads-store/internal/handler/dto/request"
	resdto "beads-store/internal/handler/dto/response"
	"beads-store/internal/handler/middleware"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/commands"
	"beads-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(couponCommands commands.CouponCommands, couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary Validate coupon
// @Description Preview a coupon against a cart total; records nothing
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Coupon and cart total"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ValidateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.couponQueries.Validate(c.Request.Context(), req.Code, req.CartTotal, &userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponValidationView(view))
}

// @Summary Create coupon
// @Description Admin creation of a coupon definition
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon definition"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.couponCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCouponCodeTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid coupon definition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Toggle coupon
// @Description Admin activation or deactivation of a coupon
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.SetCouponActiveRequest true "Active flag"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/coupons/{id}/active [patch]
func (h *CouponHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID format"})
		return
	}

	var req reqdto.SetCouponActiveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.couponCommands.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		switch {
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon updated"})
}
