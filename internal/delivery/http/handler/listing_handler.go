package handler

import (
	"net/http"
	"path/filepath"
	"strconv"

	entity "bibtrade/internal/domain"
	service "bibtrade/internal/service/postgresql"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	listingService *service.ListingService
}

func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// @Summary      Create Listing
// @Description  Post a sell or buy listing for a bib, multipart with up to 3 images on sell listings.
// @Tags         Listings
// @Accept       multipart/form-data
// @Produce      json
// @Security     ApiKeyAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /listings [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form-data", "detail": err.Error()})
		return
	}

	get := func(key string) string {
		if v, ok := form.Value[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}
	getBool := func(key string) bool {
		return get(key) == "true" || get(key) == "1"
	}
	getInt := func(key string) int {
		n, _ := strconv.Atoi(get(key))
		return n
	}

	input := entity.CreateListingInput{
		EventIDStr:            get("event_id"),
		Type:                  get("type"),
		Distance:              get("distance"),
		IncludesBib:           getBool("includes_bib"),
		BibGender:             get("bib_gender"),
		IncludesShirt:         getBool("includes_shirt"),
		ShirtSize:             get("shirt_size"),
		IncludesFinisherShirt: getBool("includes_finisher_shirt"),
		FinisherShirtSize:     get("finisher_shirt_size"),
		IncludesMedal:         getBool("includes_medal"),
		IncludesOther:         get("includes_other"),
		PriceMode:             get("price_mode"),
		AskingPrice:           getInt("asking_price"),
		MinPrice:              getInt("min_price"),
		MaxPrice:              getInt("max_price"),
		MeetupLocation:        get("meetup_location"),
		Note:                  get("note"),
	}

	var bibImageURL string
	var extraImageURLs []string
	if input.Type == entity.ListingTypeSell {
		files := form.File["images"]
		for i, file := range files {
			if i >= 3 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "at most 3 images allowed"})
				return
			}
			filename := uuid.New().String() + filepath.Ext(file.Filename)
			savePath := "uploads/listings/" + filename
			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			url := "/uploads/listings/" + filename
			if i == 0 {
				bibImageURL = url
			} else {
				extraImageURLs = append(extraImageURLs, url)
			}
		}
	}

	listing, err := h.listingService.CreateListing(userID, input, bibImageURL, extraImageURLs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Listing created successfully.",
		"listing": listing,
	})
}

// @Summary      Search Listings
// @Description  Open listings newest first, filterable by event, type, distance and province.
// @Tags         Listings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /listings [get]
func (h *ListingHandler) SearchListings(c *gin.Context) {
	var filter entity.ListingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter", "detail": err.Error()})
		return
	}

	listings, err := h.listingService.SearchListings(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// @Summary      Listing Detail
// @Tags         Listings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /listings/{id} [get]
func (h *ListingHandler) GetListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	listing, err := h.listingService.GetListing(listingID)
	if err != nil {
		if err == service.ErrListingNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	// min_price and max_price carry json:"-", so the negotiation bounds
	// never appear in the response.
	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// @Summary      My Listings
// @Description  The caller's listings grouped by lifecycle stage.
// @Tags         Listings
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /listings/my [get]
func (h *ListingHandler) GetMyListings(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	listings, err := h.listingService.GetMyListings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	grouped := gin.H{
		"waiting":   []entity.Listing{},
		"matched":   []entity.Listing{},
		"completed": []entity.Listing{},
		"cancelled": []entity.Listing{},
	}
	for _, l := range listings {
		switch l.Status {
		case entity.ListingStatusWaiting:
			grouped["waiting"] = append(grouped["waiting"].([]entity.Listing), l)
		case entity.ListingStatusMatching, entity.ListingStatusMatched:
			grouped["matched"] = append(grouped["matched"].([]entity.Listing), l)
		case entity.ListingStatusCompleted:
			grouped["completed"] = append(grouped["completed"].([]entity.Listing), l)
		case entity.ListingStatusCancelled:
			grouped["cancelled"] = append(grouped["cancelled"].([]entity.Listing), l)
		}
	}

	c.JSON(http.StatusOK, grouped)
}

// @Summary      Cancel Listing
// @Tags         Listings
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /listings/{id}/cancel [post]
func (h *ListingHandler) CancelListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	listing, err := h.listingService.CancelListing(userID, listingID)
	if err != nil {
		switch err {
		case service.ErrListingNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrNotOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case service.ErrListingState:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing cancelled.",
		"listing": listing,
	})
}
