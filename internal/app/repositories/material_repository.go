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

// IMaterialRepository defines the interface for educational material database operations
type IMaterialRepository interface {
	Create(ctx context.Context, material *models.Material) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Material, error)
	List(ctx context.Context, category string, offset uint64, limit int) ([]*models.Material, error)
	Count(ctx context.Context, category string) (int64, error)
	Update(ctx context.Context, material *models.Material) error
	Delete(ctx context.Context, id int64) error
}

var materialColumns = []string{
	"id", "title", "description", "category", "file_url", "uploader_id", "created_at",
}

// MaterialRepository handles educational material database operations
type MaterialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanMaterial(row pgx.Row) (*models.Material, error) {
	material := &models.Material{}
	err := row.Scan(
		&material.ID, &material.Title, &material.Description, &material.Category,
		&material.FileURL, &material.UploaderID, &material.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return material, nil
}

// Create inserts a new material and returns its ID
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) (int64, error) {
	sql, args, err := r.sb.Insert("materials").
		Columns("title", "description", "category", "file_url", "uploader_id").
		Values(material.Title, material.Description, material.Category,
			material.FileURL, material.UploaderID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create material query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("title", material.Title).Msg("Error executing create material query")
		return 0, fmt.Errorf("error creating material: %w", err)
	}

	return id, nil
}

// GetByID retrieves a material by ID
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	sql, args, err := r.sb.Select(materialColumns...).
		From("materials").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get material query: %w", err)
	}

	material, err := scanMaterial(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		logger.Error().Err(err).Int64("materialID", id).Msg("Error scanning material row")
		return nil, fmt.Errorf("error getting material by ID: %w", err)
	}

	return material, nil
}

// List retrieves materials, newest first, optionally filtered by category
func (r *MaterialRepository) List(ctx context.Context, category string, offset uint64, limit int) ([]*models.Material, error) {
	query := r.sb.Select(materialColumns...).
		From("materials").
		OrderBy("created_at DESC", "id DESC").
		Offset(offset).
		Limit(uint64(limit))

	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list materials query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list materials query")
		return nil, fmt.Errorf("error querying materials: %w", err)
	}
	defer rows.Close()

	materials := []*models.Material{}
	for rows.Next() {
		material, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning material row: %w", err)
		}
		materials = append(materials, material)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating materials: %w", err)
	}

	return materials, nil
}

// Count returns the number of materials matching the category filter
func (r *MaterialRepository) Count(ctx context.Context, category string) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("materials")
	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count materials query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting materials: %w", err)
	}

	return count, nil
}

// Update replaces a material's metadata and file URL
func (r *MaterialRepository) Update(ctx context.Context, material *models.Material) error {
	sql, args, err := r.sb.Update("materials").
		Set("title", material.Title).
		Set("description", material.Description).
		Set("category", material.Category).
		Set("file_url", material.FileURL).
		Where(squirrel.Eq{"id": material.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update material query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("materialID", material.ID).Msg("Error executing update material query")
		return fmt.Errorf("error updating material: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}

	return nil
}

// Delete removes a material
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("materials").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete material query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("materialID", id).Msg("Error executing delete material query")
		return fmt.Errorf("error deleting material: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}

	return nil
}
