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

type AddressHandler struct {
	addressCommands commands.AddressCommands
	addressQueries  queries.AddressQueries
}

func NewAddressHandler(addressCommands commands.AddressCommands, addressQueries queries.AddressQueries) *AddressHandler {
	return &AddressHandler{
		addressCommands: addressCommands,
		addressQueries:  addressQueries,
	}
}

// @Summary List addresses
// @Description List the caller's saved addresses in insertion order
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AddressResponse
// @Failure 401 {object} map[string]string
// @Router /addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rows, err := h.addressQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.AddressResponse, len(rows))
	for i, rm := range rows {
		response[i] = resdto.FromAddressView(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Add address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveAddressRequest true "Address"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /addresses [post]
func (h *AddressHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SaveAddressRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.addressCommands.Add(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.respondAddressError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Param request body reqdto.SaveAddressRequest true "Address"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /addresses/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID format"})
		return
	}

	var req reqdto.SaveAddressRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.addressCommands.Update(c.Request.Context(), userID, id, req.ToInput()); err != nil {
		h.respondAddressError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Address updated"})
}

// @Summary Delete address
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID format"})
		return
	}

	if err := h.addressCommands.Delete(c.Request.Context(), userID, id); err != nil {
		h.respondAddressError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}

// @Summary Set default address
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /addresses/{id}/default [post]
func (h *AddressHandler) SetDefault(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID format"})
		return
	}

	if err := h.addressCommands.SetDefault(c.Request.Context(), userID, id); err != nil {
		h.respondAddressError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Default address updated"})
}

func (h *AddressHandler) respondAddressError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Address is missing a required field"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
