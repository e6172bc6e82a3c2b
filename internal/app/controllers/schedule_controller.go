package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/services"
	"github.com/schoolsafe/backend/internal/middleware"
)

// ScheduleController handles visit schedule endpoints
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// CreateSchedule plans a new school visit
// @Summary Create a visit schedule
// @Description Plans a school visit for the authenticated caller
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateScheduleRequest true "Schedule information"
// @Success 201 {object} dto.APIResponse{data=models.Schedule} "Schedule created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.scheduleService.CreateSchedule(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(schedule))
}

// GetSchedule retrieves a schedule by ID
// @Summary Get schedule details
// @Description Retrieves a visit schedule with its school
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Schedule"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [get]
func (c *ScheduleController) GetSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "schedule ID")
	if !ok {
		return
	}

	schedule, err := c.scheduleService.GetSchedule(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedule))
}

// ListSchedules returns schedules matching the query filters
// @Summary List visit schedules
// @Description Returns schedules chronologically. Optional filters narrow by user, school and visit date range.
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param userId query int false "Filter by owning user" Format(int64)
// @Param schoolId query int false "Filter by school" Format(int64)
// @Param from query string false "Earliest visit date (YYYY-MM-DD)"
// @Param to query string false "Latest visit date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.Schedule} "Schedules"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter values"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [get]
func (c *ScheduleController) ListSchedules(ctx *gin.Context) {
	filter := &dto.ScheduleFilter{
		From: ctx.Query("from"),
		To:   ctx.Query("to"),
	}

	if userIDStr := ctx.Query("userId"); userIDStr != "" {
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid userId filter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.UserID = &userID
	}
	if schoolIDStr := ctx.Query("schoolId"); schoolIDStr != "" {
		schoolID, err := strconv.ParseInt(schoolIDStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schoolId filter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.SchoolID = &schoolID
	}

	schedules, err := c.scheduleService.ListSchedules(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedules))
}

// UpdateSchedule replaces a schedule's fields
// @Summary Update a visit schedule
// @Description Replaces the mutable fields of a schedule. Only the owner or an administrator may change it.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID" Format(int64) minimum(1)
// @Param request body dto.UpdateScheduleRequest true "Schedule information"
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Updated schedule"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id", "schedule ID")
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.scheduleService.UpdateSchedule(ctx, userID, middleware.CurrentRole(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedule))
}

// DeleteSchedule removes a schedule
// @Summary Delete a visit schedule
// @Description Removes a schedule. Only the owner or an administrator may delete it.
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Schedule deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id", "schedule ID")
	if !ok {
		return
	}

	if err := c.scheduleService.DeleteSchedule(ctx, userID, middleware.CurrentRole(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Schedule deleted"}))
}
