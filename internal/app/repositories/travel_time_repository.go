package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
	"github.com/schoolsafe/backend/internal/pkg/logger"
)

// ITravelTimeRepository defines the interface for travel time database operations
type ITravelTimeRepository interface {
	Upsert(ctx context.Context, travelTime *models.TravelTime) (int64, error)
	GetByScheduleID(ctx context.Context, scheduleID int64) (*models.TravelTime, error)
}

// TravelTimeRepository handles travel time database operations
type TravelTimeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTravelTimeRepository creates a new TravelTimeRepository
func NewTravelTimeRepository(db *pgxpool.Pool) *TravelTimeRepository {
	return &TravelTimeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert inserts a travel time for a schedule or, if one already exists,
// overwrites it. One row per schedule is enforced by the unique index on
// schedule_id, so the last write wins.
func (r *TravelTimeRepository) Upsert(ctx context.Context, travelTime *models.TravelTime) (int64, error) {
	sql, args, err := r.sb.Insert("travel_times").
		Columns("schedule_id", "user_id", "duration_minutes", "origin").
		Values(travelTime.ScheduleID, travelTime.UserID, travelTime.DurationMinutes, travelTime.Origin).
		Suffix(`ON CONFLICT (schedule_id) DO UPDATE
			SET user_id = EXCLUDED.user_id,
			    duration_minutes = EXCLUDED.duration_minutes,
			    origin = EXCLUDED.origin,
			    updated_at = NOW()
			RETURNING id`).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build upsert travel time query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", travelTime.ScheduleID).Msg("Error executing upsert travel time query")
		return 0, fmt.Errorf("error saving travel time: %w", err)
	}

	return id, nil
}

// GetByScheduleID retrieves the stored travel time for a schedule
func (r *TravelTimeRepository) GetByScheduleID(ctx context.Context, scheduleID int64) (*models.TravelTime, error) {
	sql, args, err := r.sb.Select("id", "schedule_id", "user_id", "duration_minutes", "origin", "updated_at").
		From("travel_times").
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get travel time query: %w", err)
	}

	travelTime := &models.TravelTime{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&travelTime.ID, &travelTime.ScheduleID, &travelTime.UserID,
		&travelTime.DurationMinutes, &travelTime.Origin, &travelTime.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTravelTimeNotFound
		}
		logger.Error().Err(err).Int64("scheduleID", scheduleID).Msg("Error scanning travel time row")
		return nil, fmt.Errorf("error getting travel time: %w", err)
	}

	return travelTime, nil
}
