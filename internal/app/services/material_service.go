package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/repositories"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
	"github.com/schoolsafe/backend/internal/pkg/filestorage"
	"github.com/schoolsafe/backend/internal/pkg/helpers"
)

const materialFileDir = "materials"

// MaterialService handles the educational material library
type MaterialService struct {
	materialRepo repositories.IMaterialRepository
	fileStorage  filestorage.FileStorage
	logger       zerolog.Logger
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(
	materialRepo repositories.IMaterialRepository,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

// CreateMaterial stores the uploaded file and registers the material
func (s *MaterialService) CreateMaterial(ctx context.Context, uploaderID int64, req *dto.CreateMaterialRequest, file *multipart.FileHeader) (*models.Material, error) {
	if file == nil {
		return nil, apperrors.NewValidationError("material file is required")
	}

	fileURL, err := s.fileStorage.SaveFileWithPath(file, materialFileDir)
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to store uploaded file")
	}

	material := &models.Material{
		Title:      req.Title,
		Category:   req.Category,
		FileURL:    fileURL,
		UploaderID: uploaderID,
	}
	if req.Description != "" {
		material.Description = &req.Description
	}

	id, err := s.materialRepo.Create(ctx, material)
	if err != nil {
		// Creation failed, do not leave the stored file behind
		_ = s.fileStorage.DeleteFile(fileURL)
		return nil, err
	}

	s.logger.Info().Int64("materialID", id).Str("title", req.Title).Msg("Educational material uploaded")

	return s.materialRepo.GetByID(ctx, id)
}

// GetMaterial retrieves a material by ID
func (s *MaterialService) GetMaterial(ctx context.Context, id int64) (*models.Material, error) {
	return s.materialRepo.GetByID(ctx, id)
}

// ListMaterials returns a page of materials, newest first, optionally
// filtered by category.
func (s *MaterialService) ListMaterials(ctx context.Context, category string, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	materials, err := s.materialRepo.List(ctx, category, offset, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.materialRepo.Count(ctx, category)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      materials,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// UpdateMaterial replaces a material's metadata and, when a new file is
// provided, its stored file. Only the uploader or an administrator may
// change it.
func (s *MaterialService) UpdateMaterial(ctx context.Context, actorID int64, actorRole models.RoleType, id int64, req *dto.CreateMaterialRequest, file *multipart.FileHeader) (*models.Material, error) {
	existing, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UploaderID != actorID && !actorRole.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	material := &models.Material{
		ID:       id,
		Title:    req.Title,
		Category: req.Category,
		FileURL:  existing.FileURL,
	}
	if req.Description != "" {
		material.Description = &req.Description
	}

	oldFileURL := ""
	if file != nil {
		fileURL, err := s.fileStorage.SaveFileWithPath(file, materialFileDir)
		if err != nil {
			return nil, apperrors.NewBadRequestError("failed to store uploaded file")
		}
		material.FileURL = fileURL
		oldFileURL = existing.FileURL
	}

	if err := s.materialRepo.Update(ctx, material); err != nil {
		if file != nil {
			_ = s.fileStorage.DeleteFile(material.FileURL)
		}
		return nil, err
	}

	if oldFileURL != "" {
		if err := s.fileStorage.DeleteFile(oldFileURL); err != nil {
			s.logger.Warn().Err(err).Str("fileURL", oldFileURL).Msg("Failed to delete replaced material file")
		}
	}

	return s.materialRepo.GetByID(ctx, id)
}

// DeleteMaterial removes a material and its stored file. Only the uploader
// or an administrator may delete it.
func (s *MaterialService) DeleteMaterial(ctx context.Context, actorID int64, actorRole models.RoleType, id int64) error {
	existing, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UploaderID != actorID && !actorRole.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	if err := s.materialRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.fileStorage.DeleteFile(existing.FileURL); err != nil {
		s.logger.Warn().Err(err).Str("fileURL", existing.FileURL).Msg("Failed to delete material file")
	}

	s.logger.Info().Int64("materialID", id).Msg("Educational material deleted")

	return nil
}
