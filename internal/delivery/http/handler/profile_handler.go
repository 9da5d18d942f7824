package handler

import (
	"net/http"

	entity "bibtrade/internal/domain"
	service "bibtrade/internal/service/postgresql"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	statsService *service.StatsService
}

func NewProfileHandler(statsService *service.StatsService) *ProfileHandler {
	return &ProfileHandler{statsService: statsService}
}

// @Summary      Public Profile
// @Description  Display name plus reputation score, tier and average rating.
// @Tags         Profiles
// @Produce      json
// @Success      200  {object}  entity.ProfileResp
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	profile, err := h.statsService.GetProfile(userID)
	if err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary      Rate Deal
// @Description  Rate the counterparty 1-5 on a completed listing. Each side can rate once.
// @Tags         Profiles
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /listings/{id}/rate [post]
func (h *ProfileHandler) RateDeal(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}
	raterID := c.MustGet("user_id").(uuid.UUID)

	var input entity.RateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating", "detail": err.Error()})
		return
	}

	if err := h.statsService.RateDeal(raterID, listingID, input.Rating); err != nil {
		switch err {
		case service.ErrListingNotFound, service.ErrOfferNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrInvalidRating, service.ErrDealNotCompleted:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrNotParticipant:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case service.ErrAlreadyRated:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating recorded."})
}
