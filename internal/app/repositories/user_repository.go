package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
	"github.com/schoolsafe/backend/internal/pkg/dberrors"
	"github.com/schoolsafe/backend/internal/pkg/logger"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetActiveByUsername(ctx context.Context, username string) (*models.User, error)
	FindActiveUsernames(ctx context.Context, name, phoneNumber string) ([]string, error)
	FindActiveForRecovery(ctx context.Context, username, name, phoneNumber string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateAddress(ctx context.Context, userID int64, homeAddress, officeAddress string) error
	SetActive(ctx context.Context, userID int64, isActive bool) error
	SetRole(ctx context.Context, userID int64, role models.RoleType) error
	List(ctx context.Context, offset uint64, limit int) ([]*models.User, error)
	Count(ctx context.Context) (int64, error)
}

var userColumns = []string{
	"id", "username", "password", "name", "position", "phone_number", "email",
	"department", "role", "is_active", "profile_photo_url", "home_address",
	"office_address", "created_at", "updated_at",
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.Name, &user.Position,
		&user.PhoneNumber, &user.Email, &user.Department, &user.Role,
		&user.IsActive, &user.ProfilePhotoURL, &user.HomeAddress,
		&user.OfficeAddress, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. Duplicate usernames are not pre-checked; the
// unique constraint is the sole source of truth and its violation maps to
// ErrUsernameAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "password", "name", "position", "phone_number", "email",
			"department", "role", "is_active", "profile_photo_url").
		Values(user.Username, user.Password, user.Name, user.Position, user.PhoneNumber,
			user.Email, user.Department, user.Role, user.IsActive, user.ProfilePhotoURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username regardless of activation state
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getByUsername(ctx, username, false)
}

// GetActiveByUsername retrieves a user by username with the activation gate applied
func (r *UserRepository) GetActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getByUsername(ctx, username, true)
}

func (r *UserRepository) getByUsername(ctx context.Context, username string, activeOnly bool) (*models.User, error) {
	query := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1)
	if activeOnly {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by username query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}

	return user, nil
}

// FindActiveUsernames returns every active username matching name and phone
func (r *UserRepository) FindActiveUsernames(ctx context.Context, name, phoneNumber string) ([]string, error) {
	sql, args, err := r.sb.Select("username").
		From("users").
		Where(squirrel.Eq{"name": name, "phone_number": phoneNumber, "is_active": true}).
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find usernames query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find usernames query")
		return nil, fmt.Errorf("error finding usernames: %w", err)
	}
	defer rows.Close()

	usernames := []string{}
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("error scanning username: %w", err)
		}
		usernames = append(usernames, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usernames: %w", err)
	}

	return usernames, nil
}

// FindActiveForRecovery matches username, name and phone against one active
// record; any mismatch yields ErrUserNotFound without saying which field missed.
func (r *UserRepository) FindActiveForRecovery(ctx context.Context, username, name, phoneNumber string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{
			"username":     username,
			"name":         name,
			"phone_number": phoneNumber,
			"is_active":    true,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recovery lookup query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning recovery lookup row")
		return nil, fmt.Errorf("error in recovery lookup: %w", err)
	}

	return user, nil
}

// UpdatePassword overwrites the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return r.updateFields(ctx, userID, map[string]interface{}{"password": passwordHash})
}

// UpdateAddress replaces both address fields (PUT semantics)
func (r *UserRepository) UpdateAddress(ctx context.Context, userID int64, homeAddress, officeAddress string) error {
	return r.updateFields(ctx, userID, map[string]interface{}{
		"home_address":   homeAddress,
		"office_address": officeAddress,
	})
}

// SetActive flips the activation gate
func (r *UserRepository) SetActive(ctx context.Context, userID int64, isActive bool) error {
	return r.updateFields(ctx, userID, map[string]interface{}{"is_active": isActive})
}

// SetRole changes the user's role
func (r *UserRepository) SetRole(ctx context.Context, userID int64, role models.RoleType) error {
	return r.updateFields(ctx, userID, map[string]interface{}{"role": role})
}

func (r *UserRepository) updateFields(ctx context.Context, userID int64, fields map[string]interface{}) error {
	query := r.sb.Update("users").Where(squirrel.Eq{"id": userID})
	for column, value := range fields {
		query = query.Set(column, value)
	}
	query = query.Set("updated_at", time.Now())

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// List retrieves a page of users ordered by creation time
func (r *UserRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// Count returns the total number of user records
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count users query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}

	return count, nil
}
