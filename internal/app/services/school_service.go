package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/repositories"
)

// SchoolService handles the school registry
type SchoolService struct {
	schoolRepo repositories.ISchoolRepository
	logger     zerolog.Logger
}

// NewSchoolService creates a new SchoolService
func NewSchoolService(schoolRepo repositories.ISchoolRepository, logger zerolog.Logger) *SchoolService {
	return &SchoolService{
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

// CreateSchool registers a new school. Name uniqueness is enforced by the
// database; a clash surfaces as ErrSchoolAlreadyExists.
func (s *SchoolService) CreateSchool(ctx context.Context, req *dto.CreateSchoolRequest, ownerID int64) (*models.School, error) {
	school := &models.School{
		Name:          req.Name,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
	}
	if ownerID > 0 {
		school.UserID = &ownerID
	}

	id, err := s.schoolRepo.Create(ctx, school)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("schoolID", id).Str("name", school.Name).Msg("School registered")

	return s.schoolRepo.GetByID(ctx, id)
}

// GetSchool retrieves a school by ID
func (s *SchoolService) GetSchool(ctx context.Context, id int64) (*models.School, error) {
	return s.schoolRepo.GetByID(ctx, id)
}

// ListSchools returns every registered school ordered by name
func (s *SchoolService) ListSchools(ctx context.Context) ([]*models.School, error) {
	return s.schoolRepo.GetAll(ctx)
}

// UpdateSchool replaces a school's mutable fields
func (s *SchoolService) UpdateSchool(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error) {
	school := &models.School{
		ID:            id,
		Name:          req.Name,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
	}

	if err := s.schoolRepo.Update(ctx, school); err != nil {
		return nil, err
	}

	return s.schoolRepo.GetByID(ctx, id)
}

// UpdateSchoolAddress replaces only the address field
func (s *SchoolService) UpdateSchoolAddress(ctx context.Context, id int64, address string) (*models.School, error) {
	if err := s.schoolRepo.UpdateAddress(ctx, id, address); err != nil {
		return nil, err
	}

	return s.schoolRepo.GetByID(ctx, id)
}

// DeleteSchool removes a school
func (s *SchoolService) DeleteSchool(ctx context.Context, id int64) error {
	if err := s.schoolRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("schoolID", id).Msg("School deleted")

	return nil
}
