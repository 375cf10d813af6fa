package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Viveknaik1/CFMS/internal/models/request_models"
	"github.com/Viveknaik1/CFMS/internal/services"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func (a *AdminController) DeleteUser(c *gin.Context) {
	var req request_models.DeleteUserRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adminService.DeleteUser(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "User "+req.Email+" deleted successfully")
}

func (a *AdminController) ComputeWinners(c *gin.Context) {
	winners, err := a.adminService.ComputeWinners(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, winners, "Winners computed")
}

func (a *AdminController) ListWinners(c *gin.Context) {
	winners, err := a.adminService.ListWinners(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, winners, "Winners fetched successfully")
}

func (a *AdminController) EventDetails(c *gin.Context) {
	var req request_models.EventDetailsRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	details, err := a.adminService.EventDetails(c.Request.Context(), eventID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, details, "Event details fetched successfully")
}

func (a *AdminController) AssignOrganiser(c *gin.Context) {
	var req request_models.AssignOrganiserRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	already, err := a.adminService.AssignOrganiser(c.Request.Context(), eventID, req.OrganiserEmail)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if already {
		utils.RespondWarning(c, "Organiser already assigned to this event.")
		return
	}
	utils.RespondSuccess(c, nil, "Organiser assigned successfully")
}

func (a *AdminController) HallAdmin(c *gin.Context) {
	occupancies, err := a.adminService.HallOccupancies(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, occupancies, "Halls fetched successfully")
}

func (a *AdminController) HallDetails(c *gin.Context) {
	var req request_models.HallDetailsRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hall id")
		return
	}

	details, err := a.adminService.HallDetails(c.Request.Context(), hallID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, details, "Hall details fetched successfully")
}
