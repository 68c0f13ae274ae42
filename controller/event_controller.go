package controller

import (
	"ceam-backend/models"
	"ceam-backend/services"
	"ceam-backend/utils/logger"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	ctx     context.Context
	service services.EventServiceInterface
	logger  logger.Logger
}

func NewEventController(ctx context.Context, service services.EventServiceInterface, logger logger.Logger) *EventController {
	return &EventController{
		ctx:     ctx,
		service: service,
		logger:  logger,
	}
}

// ListEvents handles GET /events
// @Summary List all events
// @Description Every configured event in catalog order, concluded ones included. This is the pre-rendered view.
// @Tags Events
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Event}
// @Router /events [get]
func (h *EventController) ListEvents(c *gin.Context) {
	events := h.service.ListEvents()
	c.JSON(http.StatusOK, success("Events retrieved successfully", events))
}

// UpcomingEvents handles GET /events/upcoming
// @Summary List upcoming events
// @Description Events whose end is after the request time, in catalog order
// @Tags Events
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Event}
// @Router /events/upcoming [get]
func (h *EventController) UpcomingEvents(c *gin.Context) {
	events := h.service.UpcomingEvents()
	c.JSON(http.StatusOK, success("Upcoming events retrieved successfully", events))
}

// HomeSection handles GET /events/home
// @Summary Home page events section
// @Tags Events
// @Produce json
// @Param phase query string false "static or live" Enums(static, live)
// @Success 200 {object} models.APIResponse{data=models.HomeSectionView}
// @Failure 400 {object} models.APIResponse
// @Router /events/home [get]
func (h *EventController) HomeSection(c *gin.Context) {
	view, err := h.service.HomeSection(models.Phase(c.Query("phase")))
	if err != nil {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid phase", "ValidationError", err.Error(), "phase"))
		return
	}
	c.JSON(http.StatusOK, success("Home section retrieved successfully", view))
}

// ListingGrid handles GET /events/listing
// @Summary Events page grid
// @Description Event cards plus the empty state or the "more events" filler card
// @Tags Events
// @Produce json
// @Param phase query string false "static or live" Enums(static, live)
// @Success 200 {object} models.APIResponse{data=models.ListingGridView}
// @Failure 400 {object} models.APIResponse
// @Router /events/listing [get]
func (h *EventController) ListingGrid(c *gin.Context) {
	view, err := h.service.ListingGrid(models.Phase(c.Query("phase")))
	if err != nil {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid phase", "ValidationError", err.Error(), "phase"))
		return
	}
	c.JSON(http.StatusOK, success("Listing retrieved successfully", view))
}

// GetEvent handles GET /events/:id
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.APIResponse{data=models.Event}
// @Failure 404 {object} models.APIResponse
// @Router /events/{id} [get]
func (h *EventController) GetEvent(c *gin.Context) {
	event, err := h.service.GetEvent(c.Param("id"))
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, success("Event retrieved successfully", event))
}

// GetCountdown handles GET /events/:id/countdown
// @Summary Countdown to an event
// @Description Days, hours, minutes and seconds until the event starts. All zero once it has started.
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.APIResponse{data=models.Countdown}
// @Failure 404 {object} models.APIResponse
// @Router /events/{id}/countdown [get]
func (h *EventController) GetCountdown(c *gin.Context) {
	countdown, err := h.service.GetCountdown(c.Param("id"))
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, success("Countdown retrieved successfully", countdown))
}

func (h *EventController) notFoundOrError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, failure(http.StatusNotFound, "Event not found", "NotFoundError", err.Error(), "id"))
		return
	}
	h.logger.Errorf("Failed to get event: %v", err)
	c.JSON(http.StatusInternalServerError, failure(http.StatusInternalServerError, "Failed to get event", "InternalError", err.Error(), ""))
}
