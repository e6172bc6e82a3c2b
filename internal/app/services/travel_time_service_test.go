package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
)

func intPtr(v int) *int { return &v }

type travelTimeFixture struct {
	svc      *TravelTimeService
	schedule *models.Schedule
}

func newTravelTimeFixture(t *testing.T) *travelTimeFixture {
	t.Helper()

	travelTimeRepo := newMockTravelTimeRepo()
	scheduleRepo := newMockScheduleRepo()
	schedule := scheduleRepo.add(&models.Schedule{UserID: 7, SchoolID: 1, Status: models.SchedulePlanned})

	return &travelTimeFixture{
		svc:      NewTravelTimeService(travelTimeRepo, scheduleRepo, zerolog.Nop()),
		schedule: schedule,
	}
}

func TestSaveTravelTime(t *testing.T) {
	f := newTravelTimeFixture(t)

	saved, err := f.svc.SaveTravelTime(context.Background(), &dto.SaveTravelTimeRequest{
		UserID:         7,
		ScheduleID:     f.schedule.ID,
		TravelTimeData: dto.TravelTimeData{DurationFromHome: intPtr(25)},
	})
	require.NoError(t, err)

	assert.Equal(t, f.schedule.ID, saved.ScheduleID)
	assert.Equal(t, 25, saved.DurationMinutes)
	assert.Equal(t, models.OriginHome, saved.Origin)
}

func TestSaveTravelTime_OfficeWins(t *testing.T) {
	f := newTravelTimeFixture(t)

	saved, err := f.svc.SaveTravelTime(context.Background(), &dto.SaveTravelTimeRequest{
		UserID:     7,
		ScheduleID: f.schedule.ID,
		TravelTimeData: dto.TravelTimeData{
			DurationFromOffice: intPtr(15),
			DurationFromHome:   intPtr(40),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 15, saved.DurationMinutes)
	assert.Equal(t, models.OriginOffice, saved.Origin)
}

func TestSaveTravelTime_Overwrites(t *testing.T) {
	f := newTravelTimeFixture(t)
	ctx := context.Background()

	first, err := f.svc.SaveTravelTime(ctx, &dto.SaveTravelTimeRequest{
		UserID:         7,
		ScheduleID:     f.schedule.ID,
		TravelTimeData: dto.TravelTimeData{DurationFromOffice: intPtr(15)},
	})
	require.NoError(t, err)

	second, err := f.svc.SaveTravelTime(ctx, &dto.SaveTravelTimeRequest{
		UserID:         7,
		ScheduleID:     f.schedule.ID,
		TravelTimeData: dto.TravelTimeData{DurationFromHome: intPtr(40)},
	})
	require.NoError(t, err)

	// One row per schedule, last write wins
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 40, second.DurationMinutes)
	assert.Equal(t, models.OriginHome, second.Origin)

	stored, err := f.svc.GetTravelTime(ctx, f.schedule.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, stored.DurationMinutes)
}

func TestSaveTravelTime_Rejections(t *testing.T) {
	f := newTravelTimeFixture(t)
	ctx := context.Background()

	_, err := f.svc.SaveTravelTime(ctx, &dto.SaveTravelTimeRequest{
		UserID:     7,
		ScheduleID: f.schedule.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "no duration supplied")

	_, err = f.svc.SaveTravelTime(ctx, &dto.SaveTravelTimeRequest{
		UserID:         7,
		ScheduleID:     404,
		TravelTimeData: dto.TravelTimeData{DurationFromOffice: intPtr(15)},
	})
	assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound, "unknown schedule")
}

func TestGetTravelTime_NotFound(t *testing.T) {
	f := newTravelTimeFixture(t)

	_, err := f.svc.GetTravelTime(context.Background(), f.schedule.ID)
	assert.ErrorIs(t, err, apperrors.ErrTravelTimeNotFound)
}
