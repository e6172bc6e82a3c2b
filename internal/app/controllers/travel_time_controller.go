package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/services"
	"github.com/schoolsafe/backend/internal/middleware"
)

// TravelTimeController handles the travel time endpoints
type TravelTimeController struct {
	travelTimeService *services.TravelTimeService
}

// NewTravelTimeController creates a new TravelTimeController
func NewTravelTimeController(travelTimeService *services.TravelTimeService) *TravelTimeController {
	return &TravelTimeController{
		travelTimeService: travelTimeService,
	}
}

// SaveTravelTime upserts the travel time for a schedule
// @Summary Save travel time
// @Description Stores the computed commute duration for a schedule. Repeated saves overwrite the earlier record; when both durations are present the office one wins.
// @Tags travel-times
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveTravelTimeRequest true "Travel time data"
// @Success 200 {object} dto.APIResponse{data=models.TravelTime} "Travel time saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /travel-time/save [post]
func (c *TravelTimeController) SaveTravelTime(ctx *gin.Context) {
	var req dto.SaveTravelTimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	travelTime, err := c.travelTimeService.SaveTravelTime(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(travelTime))
}

// GetTravelTime retrieves the travel time for a schedule
// @Summary Get travel time
// @Description Retrieves the stored commute duration for a schedule
// @Tags travel-times
// @Produce json
// @Security BearerAuth
// @Param scheduleId path int true "Schedule ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.TravelTime} "Travel time"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No travel time stored"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /travel-time/{scheduleId} [get]
func (c *TravelTimeController) GetTravelTime(ctx *gin.Context) {
	scheduleID, ok := parseIDParam(ctx, "scheduleId", "schedule ID")
	if !ok {
		return
	}

	travelTime, err := c.travelTimeService.GetTravelTime(ctx, scheduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(travelTime))
}
