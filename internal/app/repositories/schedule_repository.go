package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
	"github.com/schoolsafe/backend/internal/pkg/helpers"
	"github.com/schoolsafe/backend/internal/pkg/logger"
)

// IScheduleRepository defines the interface for visit schedule database operations
type IScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Schedule, error)
	Find(ctx context.Context, filter *dto.ScheduleFilter) ([]*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id int64) error
}

// ScheduleRepository handles visit schedule database operations
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// scheduleJoinColumns selects the schedule together with its school so list
// views do not need a second round trip per row.
var scheduleJoinColumns = []string{
	"s.id", "s.user_id", "s.school_id", "s.visit_date",
	"to_char(s.start_time, 'HH24:MI')", "to_char(s.end_time, 'HH24:MI')",
	"s.purpose", "s.status", "s.memo", "s.created_at",
	"sc.id", "sc.name", "sc.address", "sc.phone_number", "sc.contact_person",
	"sc.email", "sc.user_id", "sc.created_at",
}

func scanScheduleWithSchool(row pgx.Row) (*models.Schedule, error) {
	schedule := &models.Schedule{}
	school := &models.School{}
	err := row.Scan(
		&schedule.ID, &schedule.UserID, &schedule.SchoolID, &schedule.VisitDate,
		&schedule.StartTime, &schedule.EndTime,
		&schedule.Purpose, &schedule.Status, &schedule.Memo, &schedule.CreatedAt,
		&school.ID, &school.Name, &school.Address, &school.PhoneNumber,
		&school.ContactPerson, &school.Email, &school.UserID, &school.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	schedule.School = school
	return schedule, nil
}

// Create inserts a new schedule and returns its ID
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) (int64, error) {
	sql, args, err := r.sb.Insert("schedules").
		Columns("user_id", "school_id", "visit_date", "start_time", "end_time",
			"purpose", "status", "memo").
		Values(schedule.UserID, schedule.SchoolID, schedule.VisitDate,
			schedule.StartTime, schedule.EndTime,
			schedule.Purpose, schedule.Status, schedule.Memo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create schedule query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Int64("userID", schedule.UserID).Msg("Error executing create schedule query")
		return 0, fmt.Errorf("error creating schedule: %w", err)
	}

	return id, nil
}

// GetByID retrieves a schedule with its school relation
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	sql, args, err := r.sb.Select(scheduleJoinColumns...).
		From("schedules s").
		Join("schools sc ON sc.id = s.school_id").
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get schedule query: %w", err)
	}

	schedule, err := scanScheduleWithSchool(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error scanning schedule row")
		return nil, fmt.Errorf("error getting schedule by ID: %w", err)
	}

	return schedule, nil
}

// Find retrieves schedules matching the given filter, ordered by visit date
// and start time.
func (r *ScheduleRepository) Find(ctx context.Context, filter *dto.ScheduleFilter) ([]*models.Schedule, error) {
	query := r.sb.Select(scheduleJoinColumns...).
		From("schedules s").
		Join("schools sc ON sc.id = s.school_id").
		OrderBy("s.visit_date ASC", "s.start_time ASC")

	if filter != nil {
		if filter.UserID != nil {
			query = query.Where(squirrel.Eq{"s.user_id": *filter.UserID})
		}
		if filter.SchoolID != nil {
			query = query.Where(squirrel.Eq{"s.school_id": *filter.SchoolID})
		}
		if filter.From != "" {
			from, err := helpers.ParseDate(filter.From)
			if err != nil {
				return nil, apperrors.NewBadRequestError("invalid 'from' date, expected YYYY-MM-DD")
			}
			query = query.Where(squirrel.GtOrEq{"s.visit_date": from})
		}
		if filter.To != "" {
			to, err := helpers.ParseDate(filter.To)
			if err != nil {
				return nil, apperrors.NewBadRequestError("invalid 'to' date, expected YYYY-MM-DD")
			}
			query = query.Where(squirrel.LtOrEq{"s.visit_date": to})
		}
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find schedules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find schedules query")
		return nil, fmt.Errorf("error querying schedules: %w", err)
	}
	defer rows.Close()

	schedules := []*models.Schedule{}
	for rows.Next() {
		schedule, err := scanScheduleWithSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedules: %w", err)
	}

	return schedules, nil
}

// Update replaces a schedule's mutable fields
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	sql, args, err := r.sb.Update("schedules").
		Set("school_id", schedule.SchoolID).
		Set("visit_date", schedule.VisitDate).
		Set("start_time", schedule.StartTime).
		Set("end_time", schedule.EndTime).
		Set("purpose", schedule.Purpose).
		Set("status", schedule.Status).
		Set("memo", schedule.Memo).
		Where(squirrel.Eq{"id": schedule.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update schedule query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", schedule.ID).Msg("Error executing update schedule query")
		return fmt.Errorf("error updating schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}

// Delete removes a schedule
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete schedule query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error executing delete schedule query")
		return fmt.Errorf("error deleting schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}
