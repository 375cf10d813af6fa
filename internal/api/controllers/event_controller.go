package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Viveknaik1/CFMS/internal/models/request_models"
	"github.com/Viveknaik1/CFMS/internal/services"
	"github.com/Viveknaik1/CFMS/pkg/middleware"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

func (e *EventController) ListEvents(c *gin.Context) {
	events, err := e.eventService.ListEvents(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, events, "Events fetched successfully")
}

func (e *EventController) RegisterForEvent(c *gin.Context) {
	var req request_models.EventRegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	email, ok := middleware.SessionEmail(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing session")
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	already, err := e.eventService.RegisterForEvent(c.Request.Context(), email, eventID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if already {
		utils.RespondWarning(c, "Already registered for this event.")
		return
	}
	utils.RespondSuccess(c, nil, "Registered successfully for the event!")
}

func (e *EventController) VolunteerForEvent(c *gin.Context) {
	var req request_models.VolunteerRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	email, ok := middleware.SessionEmail(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing session")
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	already, err := e.eventService.VolunteerForEvent(c.Request.Context(), email, eventID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if already {
		utils.RespondWarning(c, "Already volunteered for this event.")
		return
	}
	utils.RespondSuccess(c, nil, "Successfully volunteered for the event!")
}
