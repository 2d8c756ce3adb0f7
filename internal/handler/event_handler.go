package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/events"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/middleware"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/service"
)

// EventHandler handles neighborhood event endpoints
type EventHandler struct {
	eventService *service.EventService
	bus          Publisher
}

func NewEventHandler(eventService *service.EventService, bus Publisher) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		bus:          bus,
	}
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateEventRequest true "Create event request"
// @Success 201 {object} model.Event
// @Failure 400 {object} model.ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)
	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.bus.Publish(c.Request.Context(), events.Created(event.ID, events.CollectionEvents, event))
	c.JSON(http.StatusCreated, event)
}

// Invite godoc
// @Summary Invite a user to an event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body model.InviteRequest true "Invite request"
// @Success 200 {object} model.Event
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /events/{id}/invite [post]
func (h *EventHandler) Invite(c *gin.Context) {
	userID := middleware.UserID(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid event id"})
		return
	}

	var req model.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	before, after, err := h.eventService.Invite(c.Request.Context(), eventID, userID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.bus.Publish(c.Request.Context(), events.Updated(after.ID, events.CollectionEvents, before, after))
	c.JSON(http.StatusOK, after)
}

// RSVP godoc
// @Summary Attend an event
// @Description Adds the caller to the attendee list and queues a confirmation email
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} model.ErrorResponse
// @Router /events/{id}/rsvp [post]
func (h *EventHandler) RSVP(c *gin.Context) {
	userID := middleware.UserID(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid event id"})
		return
	}

	before, after, err := h.eventService.RSVP(c.Request.Context(), eventID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.bus.Publish(c.Request.Context(), events.Updated(after.ID, events.CollectionEvents, before, after))
	c.JSON(http.StatusOK, after)
}
