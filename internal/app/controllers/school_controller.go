package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/services"
	"github.com/schoolsafe/backend/internal/middleware"
)

// SchoolController handles the school registry endpoints
type SchoolController struct {
	schoolService *services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService *services.SchoolService) *SchoolController {
	return &SchoolController{
		schoolService: schoolService,
	}
}

// CreateSchool registers a new school
// @Summary Create a school
// @Description Registers a new school. The name must be unique. Administrators only.
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSchoolRequest true "School information"
// @Success 201 {object} dto.APIResponse{data=models.School} "School created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "School already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools [post]
func (c *SchoolController) CreateSchool(ctx *gin.Context) {
	var req dto.CreateSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	ownerID, _ := middleware.CurrentUserID(ctx)

	school, err := c.schoolService.CreateSchool(ctx, &req, ownerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(school))
}

// GetSchool retrieves a school by ID
// @Summary Get school details
// @Description Retrieves a school by its ID
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.School} "School"
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{id} [get]
func (c *SchoolController) GetSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "school ID")
	if !ok {
		return
	}

	school, err := c.schoolService.GetSchool(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(school))
}

// ListSchools returns every registered school
// @Summary List schools
// @Description Returns all registered schools ordered by name
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.School} "Schools"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools [get]
func (c *SchoolController) ListSchools(ctx *gin.Context) {
	schools, err := c.schoolService.ListSchools(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schools))
}

// UpdateSchool replaces a school's fields
// @Summary Update a school
// @Description Replaces the mutable fields of a school. Administrators only.
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSchoolRequest true "School information"
// @Success 200 {object} dto.APIResponse{data=models.School} "Updated school"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 409 {object} dto.ErrorResponse "School name already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{id} [put]
func (c *SchoolController) UpdateSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "school ID")
	if !ok {
		return
	}

	var req dto.UpdateSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	school, err := c.schoolService.UpdateSchool(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(school))
}

// UpdateSchoolAddress replaces only the address
// @Summary Update a school's address
// @Description Replaces only the address field of a school. Administrators only.
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSchoolAddressRequest true "New address"
// @Success 200 {object} dto.APIResponse{data=models.School} "Updated school"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{id}/address [put]
func (c *SchoolController) UpdateSchoolAddress(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "school ID")
	if !ok {
		return
	}

	var req dto.UpdateSchoolAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	school, err := c.schoolService.UpdateSchoolAddress(ctx, id, req.Address)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(school))
}

// DeleteSchool removes a school
// @Summary Delete a school
// @Description Removes a school from the registry. Administrators only.
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "School deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{id} [delete]
func (c *SchoolController) DeleteSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "school ID")
	if !ok {
		return
	}

	if err := c.schoolService.DeleteSchool(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "School deleted"}))
}
