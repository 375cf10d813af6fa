package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Viveknaik1/CFMS/internal/models/request_models"
	"github.com/Viveknaik1/CFMS/internal/services"
	"github.com/Viveknaik1/CFMS/pkg/middleware"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

const sessionMaxAge = 24 * 60 * 60

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

func (a *AccountController) RegisterStudent(c *gin.Context) {
	var req request_models.StudentRegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.RegisterStudent(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Student registered successfully! Please login.")
}

func (a *AccountController) RegisterExternal(c *gin.Context) {
	var req request_models.ExternalRegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.RegisterExternal(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "External participant registered successfully! Please login.")
}

func (a *AccountController) RegisterOrganiser(c *gin.Context) {
	var req request_models.OrganiserRegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.RegisterOrganiser(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Organizer registered successfully! Please login.")
}

func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, session.Token, sessionMaxAge, "/", "", false, true)
	utils.RespondSuccess(c, session, "Login successful")
}

// Logout clears the session cookie. Idempotent: logging out twice is
// as good as once.
func (a *AccountController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	utils.RespondSuccess(c, nil, "Logged out")
}
