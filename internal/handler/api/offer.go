package api

import (
	"errors"
	"net/http"

	reqdto "beads-store/internal/handler/dto/request"
	"beads-store/internal/pkg/errs"
	"beads-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	offerCommands commands.OfferCommands
}

func NewOfferHandler(offerCommands commands.OfferCommands) *OfferHandler {
	return &OfferHandler{offerCommands: offerCommands}
}

// @Summary Create offer
// @Description Admin creation of a shared discount rule
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer definition"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	var req reqdto.CreateOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.offerCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid offer definition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Toggle offer
// @Description Admin activation or deactivation of an offer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.SetOfferActiveRequest true "Active flag"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/offers/{id}/active [patch]
func (h *OfferHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID format"})
		return
	}

	var req reqdto.SetOfferActiveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.offerCommands.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		switch {
		case errors.Is(err, errs.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Offer updated"})
}

// @Summary Delete offer
// @Description Admin deletion; refused while products still carry the offer
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/offers/{id} [delete]
func (h *OfferHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID format"})
		return
	}

	if err := h.offerCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		case errors.Is(err, errs.ErrOfferInUse):
			c.JSON(http.StatusConflict, gin.H{"error": "Offer is still applied to products"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted"})
}
