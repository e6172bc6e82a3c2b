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
	"github.com/schoolsafe/backend/internal/pkg/dberrors"
	"github.com/schoolsafe/backend/internal/pkg/logger"
)

// ISchoolRepository defines the interface for school database operations
type ISchoolRepository interface {
	Create(ctx context.Context, school *models.School) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.School, error)
	GetAll(ctx context.Context) ([]*models.School, error)
	Update(ctx context.Context, school *models.School) error
	UpdateAddress(ctx context.Context, id int64, address string) error
	Delete(ctx context.Context, id int64) error
}

var schoolColumns = []string{
	"id", "name", "address", "phone_number", "contact_person", "email", "user_id", "created_at",
}

// SchoolRepository handles school database operations
type SchoolRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSchoolRepository creates a new SchoolRepository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanSchool(row pgx.Row) (*models.School, error) {
	school := &models.School{}
	err := row.Scan(
		&school.ID, &school.Name, &school.Address, &school.PhoneNumber,
		&school.ContactPerson, &school.Email, &school.UserID, &school.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return school, nil
}

// Create inserts a new school; the unique name constraint maps to
// ErrSchoolAlreadyExists.
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) (int64, error) {
	sql, args, err := r.sb.Insert("schools").
		Columns("name", "address", "phone_number", "contact_person", "email", "user_id").
		Values(school.Name, school.Address, school.PhoneNumber, school.ContactPerson,
			school.Email, school.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create school query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrSchoolAlreadyExists
		}
		logger.Error().Err(err).Str("name", school.Name).Msg("Error executing create school query")
		return 0, fmt.Errorf("error creating school: %w", err)
	}

	return id, nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	sql, args, err := r.sb.Select(schoolColumns...).
		From("schools").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get school query: %w", err)
	}

	school, err := scanSchool(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		logger.Error().Err(err).Int64("schoolID", id).Msg("Error scanning school row")
		return nil, fmt.Errorf("error getting school by ID: %w", err)
	}

	return school, nil
}

// GetAll retrieves all schools ordered by name
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	sql, args, err := r.sb.Select(schoolColumns...).
		From("schools").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all schools query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all schools query")
		return nil, fmt.Errorf("error querying schools: %w", err)
	}
	defer rows.Close()

	schools := []*models.School{}
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning school row: %w", err)
		}
		schools = append(schools, school)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schools: %w", err)
	}

	return schools, nil
}

// Update replaces a school's mutable fields
func (r *SchoolRepository) Update(ctx context.Context, school *models.School) error {
	sql, args, err := r.sb.Update("schools").
		Set("name", school.Name).
		Set("address", school.Address).
		Set("phone_number", school.PhoneNumber).
		Set("contact_person", school.ContactPerson).
		Set("email", school.Email).
		Where(squirrel.Eq{"id": school.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update school query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSchoolAlreadyExists
		}
		logger.Error().Err(err).Int64("schoolID", school.ID).Msg("Error executing update school query")
		return fmt.Errorf("error updating school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}

// UpdateAddress replaces only the address field
func (r *SchoolRepository) UpdateAddress(ctx context.Context, id int64, address string) error {
	sql, args, err := r.sb.Update("schools").
		Set("address", address).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update school address query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("schoolID", id).Msg("Error executing update school address query")
		return fmt.Errorf("error updating school address: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}

// Delete removes a school
func (r *SchoolRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("schools").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete school query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("schoolID", id).Msg("Error executing delete school query")
		return fmt.Errorf("error deleting school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}
