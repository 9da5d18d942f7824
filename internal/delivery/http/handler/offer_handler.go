package handler

import (
	"net/http"

	entity "bibtrade/internal/domain"
	service "bibtrade/internal/service/postgresql"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	offerService *service.OfferService
}

func NewOfferHandler(offerService *service.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

func offerErrorStatus(err error) int {
	switch err {
	case service.ErrListingNotFound, service.ErrOfferNotFound:
		return http.StatusNotFound
	case service.ErrNotOwner, service.ErrNotBuyer, service.ErrNotParticipant, service.ErrOwnListing:
		return http.StatusForbidden
	case service.ErrDuplicateOffer, service.ErrListingClosed, service.ErrListingState, service.ErrOfferState:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// @Summary      Quote Hidden Price
// @Description  Evaluate the buyer ceiling against the hidden seller floor without creating an offer.
// @Tags         Offers
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  negotiation.Outcome
// @Failure      400  {object}  map[string]interface{}
// @Router       /listings/{id}/quote [post]
func (h *OfferHandler) QuoteHiddenPrice(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	var input entity.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	out, err := h.offerService.QuoteHiddenPrice(listingID, userID, input.MaxPrice)
	if err != nil {
		c.JSON(offerErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// @Summary      Submit Offer
// @Description  Make an offer on a listing. Hidden-price listings negotiate first; a no-match creates nothing.
// @Tags         Offers
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /listings/{id}/offers [post]
func (h *OfferHandler) SubmitOffer(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	var input entity.SubmitOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	offer, out, err := h.offerService.SubmitOffer(listingID, userID, input)
	if err != nil {
		c.JSON(offerErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	if !out.Matched {
		c.JSON(http.StatusOK, gin.H{
			"matched": false,
			"message": "Your price is below what the seller accepts. Try a higher budget or another listing.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Offer submitted. Waiting for the seller to respond.",
		"matched": true,
		"offer":   offer,
	})
}

// @Summary      My Offers
// @Tags         Offers
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /offers/my [get]
func (h *OfferHandler) GetMyOffers(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	offers, err := h.offerService.GetMyOffers(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// @Summary      Offers On a Listing
// @Description  Seller's view of the offers on one of their listings.
// @Tags         Offers
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /listings/{id}/offers [get]
func (h *OfferHandler) GetOffersForListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	offers, err := h.offerService.GetOffersForListing(userID, listingID)
	if err != nil {
		c.JSON(offerErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// @Summary      Accept Offer
// @Description  Accept one pending offer; competing pending offers are rejected and the listing moves to matching.
// @Tags         Offers
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /offers/{id}/accept [post]
func (h *OfferHandler) AcceptOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer id"})
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	offer, err := h.offerService.AcceptOffer(userID, offerID)
	if err != nil {
		c.JSON(offerErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Offer accepted.",
		"offer":   offer,
	})
}

// @Summary      Reject Offer
// @Tags         Offers
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /offers/{id}/reject [post]
func (h *OfferHandler) RejectOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer id"})
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	offer, err := h.offerService.RejectOffer(userID, offerID)
	if err != nil {
		c.JSON(offerErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Offer rejected.",
		"offer":   offer,
	})
}

// @Summary      Withdraw Offer
// @Tags         Offers
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /offers/{id}/withdraw [post]
func (h *OfferHandler) WithdrawOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer id"})
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	offer, err := h.offerService.WithdrawOffer(userID, offerID)
	if err != nil {
		c.JSON(offerErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Offer withdrawn.",
		"offer":   offer,
	})
}

// @Summary      Finalize Deal
// @Description  Seller or matched buyer confirms the in-person handover; the listing completes and both completed-deal counters increment.
// @Tags         Offers
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /listings/{id}/finalize [post]
func (h *OfferHandler) FinalizeDeal(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	listing, err := h.offerService.FinalizeDeal(userID, listingID)
	if err != nil {
		c.JSON(offerErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deal completed.",
		"listing": listing,
	})
}
