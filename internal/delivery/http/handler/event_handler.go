package handler

import (
	"net/http"

	entity "bibtrade/internal/domain"
	service "bibtrade/internal/service/postgresql"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// @Summary      Create Event
// @Description  Submit a race event; starts active and unverified.
// @Tags         Events
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Success      201  {object}  entity.Event
// @Failure      400  {object}  map[string]interface{}
// @Router       /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "detail": err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// @Summary      List Upcoming Events
// @Tags         Events
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /events [get]
func (h *EventHandler) GetUpcomingEvents(c *gin.Context) {
	events, err := h.eventService.GetUpcomingEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// @Summary      Event Detail
// @Description  An event with its open listings.
// @Tags         Events
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /events/{id} [get]
func (h *EventHandler) GetEventDetail(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, listings, err := h.eventService.GetEventDetail(eventID)
	if err != nil {
		if err == service.ErrEventNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event, "listings": listings})
}
