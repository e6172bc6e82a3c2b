package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/services"
	"github.com/schoolsafe/backend/internal/middleware"
)

// AdminController handles the one-time admin bootstrap endpoint
type AdminController struct {
	authService *services.AuthService
}

// NewAdminController creates a new AdminController
func NewAdminController(authService *services.AuthService) *AdminController {
	return &AdminController{
		authService: authService,
	}
}

// SetupAdmin promotes or creates the configured admin account
// @Summary Set up the admin account
// @Description Creates the configured admin account, or promotes and activates it when it already exists. Guarded by the setup key and safe to call repeatedly.
// @Tags admin
// @Produce json
// @Param X-Setup-Key header string true "Setup key"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Admin account ready"
// @Failure 400 {object} dto.ErrorResponse "Admin account not configured"
// @Failure 403 {object} dto.ErrorResponse "Invalid setup key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /setup-admin [post]
func (c *AdminController) SetupAdmin(ctx *gin.Context) {
	resp, err := c.authService.SetupAdmin(ctx, ctx.GetHeader("X-Setup-Key"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
