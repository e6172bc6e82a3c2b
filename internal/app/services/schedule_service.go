package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/repositories"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
	"github.com/schoolsafe/backend/internal/pkg/helpers"
)

// ScheduleService handles visit schedule planning
type ScheduleService struct {
	scheduleRepo repositories.IScheduleRepository
	schoolRepo   repositories.ISchoolRepository
	logger       zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(
	scheduleRepo repositories.IScheduleRepository,
	schoolRepo repositories.ISchoolRepository,
	logger zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		schoolRepo:   schoolRepo,
		logger:       logger,
	}
}

// validateVisitWindow parses and checks the date and time fields shared by
// create and update requests.
func (s *ScheduleService) validateVisitWindow(visitDate, startTime, endTime string) (*models.Schedule, error) {
	date, err := helpers.ParseDate(visitDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid visit date, expected YYYY-MM-DD")
	}

	start, err := helpers.ParseClock(startTime)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid start time, expected HH:MM")
	}
	end, err := helpers.ParseClock(endTime)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid end time, expected HH:MM")
	}
	// Normalized HH:MM strings order lexicographically
	if end <= start {
		return nil, apperrors.NewValidationError("end time must be after start time")
	}

	return &models.Schedule{
		VisitDate: date,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// CreateSchedule plans a new school visit for the acting user
func (s *ScheduleService) CreateSchedule(ctx context.Context, actorID int64, req *dto.CreateScheduleRequest) (*models.Schedule, error) {
	schedule, err := s.validateVisitWindow(req.VisitDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	// The school must exist before a visit can point at it
	if _, err := s.schoolRepo.GetByID(ctx, req.SchoolID); err != nil {
		return nil, err
	}

	schedule.UserID = actorID
	schedule.SchoolID = req.SchoolID
	schedule.Purpose = req.Purpose
	schedule.Status = models.SchedulePlanned
	if req.Memo != "" {
		schedule.Memo = &req.Memo
	}

	id, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("scheduleID", id).Int64("userID", actorID).Int64("schoolID", req.SchoolID).Msg("Visit schedule created")

	return s.scheduleRepo.GetByID(ctx, id)
}

// GetSchedule retrieves a schedule with its school
func (s *ScheduleService) GetSchedule(ctx context.Context, id int64) (*models.Schedule, error) {
	return s.scheduleRepo.GetByID(ctx, id)
}

// ListSchedules returns schedules matching the filter, chronologically
func (s *ScheduleService) ListSchedules(ctx context.Context, filter *dto.ScheduleFilter) ([]*models.Schedule, error) {
	return s.scheduleRepo.Find(ctx, filter)
}

// UpdateSchedule replaces a schedule's mutable fields. Only the owner or
// an administrator may change it.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, actorID int64, actorRole models.RoleType, id int64, req *dto.UpdateScheduleRequest) (*models.Schedule, error) {
	existing, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != actorID && !actorRole.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	schedule, err := s.validateVisitWindow(req.VisitDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if req.SchoolID != existing.SchoolID {
		if _, err := s.schoolRepo.GetByID(ctx, req.SchoolID); err != nil {
			return nil, err
		}
	}

	schedule.ID = id
	schedule.SchoolID = req.SchoolID
	schedule.Purpose = req.Purpose
	schedule.Status = models.ScheduleStatus(req.Status)
	if req.Memo != "" {
		schedule.Memo = &req.Memo
	}

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		if errors.Is(err, apperrors.ErrScheduleNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating schedule: %w", err)
	}

	return s.scheduleRepo.GetByID(ctx, id)
}

// DeleteSchedule removes a schedule. Only the owner or an administrator
// may delete it.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, actorID int64, actorRole models.RoleType, id int64) error {
	existing, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != actorID && !actorRole.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("scheduleID", id).Int64("userID", actorID).Msg("Visit schedule deleted")

	return nil
}
