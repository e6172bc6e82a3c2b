package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/repositories"
	"github.com/schoolsafe/backend/internal/pkg/helpers"
)

// UserService handles account administration operations
type UserService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser retrieves a single user by ID
func (s *UserService) GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// ListUsers returns a page of accounts, newest first
func (s *UserService) ListUsers(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, dto.FromUser(user))
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// SetActive flips the activation gate on an account. Signup leaves accounts
// inactive until an administrator approves them here.
func (s *UserService) SetActive(ctx context.Context, userID int64, isActive bool) (*dto.UserResponse, error) {
	if err := s.userRepo.SetActive(ctx, userID, isActive); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Bool("isActive", isActive).Msg("Account activation changed")

	return s.GetUser(ctx, userID)
}

// UpdateAddress replaces both stored addresses of an account
func (s *UserService) UpdateAddress(ctx context.Context, userID int64, req *dto.UpdateAddressRequest) (*dto.UserResponse, error) {
	if err := s.userRepo.UpdateAddress(ctx, userID, req.HomeAddress, req.OfficeAddress); err != nil {
		return nil, err
	}

	return s.GetUser(ctx, userID)
}
