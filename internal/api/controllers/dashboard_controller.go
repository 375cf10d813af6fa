package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Viveknaik1/CFMS/internal/services"
	"github.com/Viveknaik1/CFMS/pkg/middleware"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (d *DashboardController) GetDashboard(c *gin.Context) {
	email, ok := middleware.SessionEmail(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing session")
		return
	}
	role, ok := middleware.SessionRole(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing session")
		return
	}

	dashboard, err := d.dashboardService.GetDashboard(c.Request.Context(), email, role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, dashboard, "Dashboard fetched successfully")
}
