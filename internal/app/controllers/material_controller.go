package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/services"
	"github.com/schoolsafe/backend/internal/middleware"
	"github.com/schoolsafe/backend/internal/pkg/helpers"
)

// MaterialController handles the educational material endpoints
type MaterialController struct {
	materialService *services.MaterialService
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService *services.MaterialService) *MaterialController {
	return &MaterialController{
		materialService: materialService,
	}
}

// CreateMaterial uploads a new material
// @Summary Upload a material
// @Description Registers an educational material from a multipart form. The file travels as the "file" part.
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param category formData string true "Category"
// @Param file formData file true "Material file"
// @Success 201 {object} dto.APIResponse{data=models.Material} "Material created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials [post]
func (c *MaterialController) CreateMaterial(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Material file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	material, err := c.materialService.CreateMaterial(ctx, userID, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(material))
}

// GetMaterial retrieves a material by ID
// @Summary Get material details
// @Description Retrieves an educational material by its ID
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Material} "Material"
// @Failure 400 {object} dto.ErrorResponse "Invalid material ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/{id} [get]
func (c *MaterialController) GetMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "material ID")
	if !ok {
		return
	}

	material, err := c.materialService.GetMaterial(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(material))
}

// ListMaterials returns a page of materials
// @Summary List materials
// @Description Returns a page of materials, newest first, optionally filtered by category
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Materials"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials [get]
func (c *MaterialController) ListMaterials(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.materialService.ListMaterials(ctx, ctx.Query("category"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateMaterial replaces a material's metadata and optionally its file
// @Summary Update a material
// @Description Replaces metadata and, when a new file part is present, the stored file. Only the uploader or an administrator may change it.
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID" Format(int64) minimum(1)
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param category formData string true "Category"
// @Param file formData file false "Replacement file"
// @Success 200 {object} dto.APIResponse{data=models.Material} "Updated material"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/{id} [put]
func (c *MaterialController) UpdateMaterial(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id", "material ID")
	if !ok {
		return
	}

	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// Replacement file is optional
	file, err := ctx.FormFile("file")
	if err != nil {
		file = nil
	}

	material, err := c.materialService.UpdateMaterial(ctx, userID, middleware.CurrentRole(ctx), id, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(material))
}

// DeleteMaterial removes a material
// @Summary Delete a material
// @Description Removes a material and its stored file. Only the uploader or an administrator may delete it.
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Material deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid material ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/{id} [delete]
func (c *MaterialController) DeleteMaterial(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id", "material ID")
	if !ok {
		return
	}

	if err := c.materialService.DeleteMaterial(ctx, userID, middleware.CurrentRole(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Material deleted"}))
}
