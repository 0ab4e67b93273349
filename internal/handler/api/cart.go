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

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// @Summary Get cart
// @Description Get the caller's cart with effective prices
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.cartQueries.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add a product to the cart or merge into an existing line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Item"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.cartCommands.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
}

// @Summary Update cart item
// @Description Set the quantity of a cart line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	var req reqdto.UpdateCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.cartCommands.UpdateItem(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
}

// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	if err := h.cartCommands.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.cartCommands.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
	case errors.Is(err, errs.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, errs.ErrProductUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Product is not available"})
	case errors.Is(err, errs.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
	case errors.Is(err, errs.ErrCartItemMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
