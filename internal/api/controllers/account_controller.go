package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/models/request_models"
	"bookstore/internal/services"
	"bookstore/pkg/middleware"
	"bookstore/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account and return a signed token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} response_models.AuthResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, resp)
}

// Login godoc
// @Summary Login to an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.AuthResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, resp)
}

// Logout revokes the presented token for the rest of its lifetime.
func (a *AccountController) Logout(c *gin.Context) {
	tokenID, expiresAt := middleware.TokenFromContext(c)
	a.accountService.Logout(tokenID, expiresAt)

	utils.RespondMessage(c, http.StatusOK, "Logged out")
}

// GetAllAccounts godoc
// @Summary List accounts
// @Tags Users
// @Produce json
// @Success 200 {array} response_models.AccountResponse
// @Security BearerAuth
// @Router /api/users [get]
func (a *AccountController) GetAllAccounts(c *gin.Context) {
	accounts, err := a.accountService.GetAllAccounts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, accounts)
}

// UpdateAccount godoc
// @Summary Change an account's email and role
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body request_models.EditAccountRequest true "New email and role id"
// @Success 200 {object} response_models.AccountResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/users/{id} [put]
func (a *AccountController) UpdateAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.EditAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.UpdateAccount(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, account)
}

func (a *AccountController) DeleteAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.accountService.DeleteAccount(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"success": true})
}
