package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/repositories"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
)

// TravelTimeService stores computed commute durations against schedules
type TravelTimeService struct {
	travelTimeRepo repositories.ITravelTimeRepository
	scheduleRepo   repositories.IScheduleRepository
	logger         zerolog.Logger
}

// NewTravelTimeService creates a new TravelTimeService
func NewTravelTimeService(
	travelTimeRepo repositories.ITravelTimeRepository,
	scheduleRepo repositories.IScheduleRepository,
	logger zerolog.Logger,
) *TravelTimeService {
	return &TravelTimeService{
		travelTimeRepo: travelTimeRepo,
		scheduleRepo:   scheduleRepo,
		logger:         logger,
	}
}

// SaveTravelTime upserts the travel time for a schedule. When both
// durations are present the office one is stored; repeated saves overwrite
// the earlier row.
func (s *TravelTimeService) SaveTravelTime(ctx context.Context, req *dto.SaveTravelTimeRequest) (*models.TravelTime, error) {
	duration, origin, err := pickTravelDuration(&req.TravelTimeData)
	if err != nil {
		return nil, err
	}

	if _, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID); err != nil {
		return nil, err
	}

	travelTime := &models.TravelTime{
		ScheduleID:      req.ScheduleID,
		UserID:          req.UserID,
		DurationMinutes: duration,
		Origin:          origin,
	}

	if _, err := s.travelTimeRepo.Upsert(ctx, travelTime); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("scheduleID", req.ScheduleID).Int("durationMinutes", duration).Str("origin", string(origin)).Msg("Travel time saved")

	return s.travelTimeRepo.GetByScheduleID(ctx, req.ScheduleID)
}

// GetTravelTime retrieves the stored travel time for a schedule
func (s *TravelTimeService) GetTravelTime(ctx context.Context, scheduleID int64) (*models.TravelTime, error) {
	return s.travelTimeRepo.GetByScheduleID(ctx, scheduleID)
}

// pickTravelDuration selects which submitted duration to store. The office
// duration wins when both are present.
func pickTravelDuration(data *dto.TravelTimeData) (int, models.TravelOrigin, error) {
	switch {
	case data == nil:
		return 0, "", apperrors.NewValidationError("travel time data is required")
	case data.DurationFromOffice != nil:
		return *data.DurationFromOffice, models.OriginOffice, nil
	case data.DurationFromHome != nil:
		return *data.DurationFromHome, models.OriginHome, nil
	default:
		return 0, "", apperrors.NewValidationError("either durationFromOffice or durationFromHome is required")
	}
}
