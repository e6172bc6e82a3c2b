package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/app/repositories"
	"github.com/schoolsafe/backend/internal/config"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
	"github.com/schoolsafe/backend/internal/pkg/auth"
	"github.com/schoolsafe/backend/internal/pkg/filestorage"
	"github.com/schoolsafe/backend/internal/pkg/phone"
)

const (
	// minPasswordLength matches the mobile client's input constraint.
	minPasswordLength = 4

	// resetTokenTTL bounds how long an issued password reset token stays valid.
	resetTokenTTL = 30 * time.Minute

	profilePhotoDir = "profiles"
)

// AuthService handles authentication, signup and account recovery
type AuthService struct {
	userRepo    repositories.IUserRepository
	tokenRepo   repositories.ITokenRepository
	resetRepo   repositories.IPasswordResetTokenRepository
	jwtService  *auth.JWTService
	fileStorage filestorage.FileStorage
	cfg         *config.Config
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	resetRepo repositories.IPasswordResetTokenRepository,
	jwtService *auth.JWTService,
	fileStorage filestorage.FileStorage,
	cfg *config.Config,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		resetRepo:   resetRepo,
		jwtService:  jwtService,
		fileStorage: fileStorage,
		cfg:         cfg,
		logger:      logger,
	}
}

// validatePassword checks if password meets requirements
func (s *AuthService) validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return apperrors.NewValidationError("password cannot be empty")
	}
	if len(password) < minPasswordLength {
		return apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}
	return nil
}

// Login authenticates a user. The configured admin credential is checked
// before the database; an inactive account is indistinguishable from a
// wrong password on purpose.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.AdminBypassEnabled() &&
		req.Username == s.cfg.Admin.Username && req.Password == s.cfg.Admin.Password {
		return s.loginAsConfiguredAdmin()
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup error: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		s.logger.Info().Str("username", user.Username).Msg("Login attempt on inactive account")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: *token, User: dto.FromUser(user)}, nil
}

// loginAsConfiguredAdmin issues a session for the config-injected admin.
// The synthetic account has no database row, so no refresh token is
// persisted and the session cannot be refreshed.
func (s *AuthService) loginAsConfiguredAdmin() (*dto.LoginResponse, error) {
	admin := &models.User{
		Username: s.cfg.Admin.Username,
		Name:     s.cfg.Admin.Username,
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	}

	accessToken, _, expiresIn, _, err := s.jwtService.GenerateTokenPair(admin)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	s.logger.Warn().Str("username", admin.Username).Msg("Configured admin credential used for login")

	return &dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.FromUser(admin),
	}, nil
}

// Signup registers a new account. The account starts inactive and stays
// unusable until an administrator activates it. A failed profile photo
// upload does not fail the signup.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest, photo *multipart.FileHeader) (*dto.SignupResponse, error) {
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	normalizedPhone, err := phone.Normalize(req.PhoneNumber)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid phone number")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:    req.Username,
		Password:    hashedPassword,
		Name:        req.Name,
		Position:    req.Position,
		PhoneNumber: normalizedPhone,
		Email:       req.Email,
		Role:        models.RoleUser,
		IsActive:    false,
	}
	if req.Department != "" {
		user.Department = &req.Department
	}

	if photo != nil {
		photoURL, err := s.fileStorage.SaveFileWithPath(photo, profilePhotoDir)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", req.Username).Msg("Profile photo upload failed, continuing signup without it")
		} else {
			user.ProfilePhotoURL = &photoURL
		}
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Str("username", req.Username).Msg("New account registered, awaiting activation")

	return &dto.SignupResponse{UserID: userID}, nil
}

// FindID returns every active username whose name and phone number match
// the request.
func (s *AuthService) FindID(ctx context.Context, req *dto.FindIDRequest) (*dto.FindIDResponse, error) {
	normalizedPhone, err := phone.Normalize(req.PhoneNumber)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid phone number")
	}

	usernames, err := s.userRepo.FindActiveUsernames(ctx, req.Name, normalizedPhone)
	if err != nil {
		return nil, fmt.Errorf("username lookup error: %w", err)
	}
	if len(usernames) == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	return &dto.FindIDResponse{Usernames: usernames}, nil
}

// RequestPasswordReset verifies account ownership and issues a one-time
// reset token. Earlier unused tokens for the same account are discarded.
func (s *AuthService) RequestPasswordReset(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error) {
	normalizedPhone, err := phone.Normalize(req.PhoneNumber)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid phone number")
	}

	user, err := s.userRepo.FindActiveForRecovery(ctx, req.Username, req.Name, normalizedPhone)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("recovery lookup error: %w", err)
	}

	if err := s.resetRepo.DeleteTokensByUserID(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("error clearing previous reset tokens: %w", err)
	}

	token := uuid.New().String()
	expiresAt := time.Now().Add(resetTokenTTL)
	if err := s.resetRepo.CreateToken(ctx, user.ID, token, expiresAt); err != nil {
		return nil, fmt.Errorf("error storing reset token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Password reset token issued")

	return &dto.ResetPasswordResponse{ResetToken: token, ExpiresAt: expiresAt}, nil
}

// ConfirmPasswordReset consumes a reset token and sets the new password.
// All existing refresh tokens of the account are revoked.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, req *dto.ConfirmResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.NewValidationError("passwords do not match")
	}
	if err := s.validatePassword(req.NewPassword); err != nil {
		return err
	}

	userID, expiryDate, used, err := s.resetRepo.GetTokenInfo(ctx, req.Token)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("reset token lookup error: %w", err)
	}
	if used {
		return apperrors.ErrResetTokenUsed
	}
	if expiryDate.Before(time.Now()) {
		return apperrors.ErrInvalidResetToken
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if err := s.resetRepo.MarkTokenAsUsed(ctx, req.Token); err != nil {
		return fmt.Errorf("error consuming reset token: %w", err)
	}
	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to revoke refresh tokens after password reset")
	}

	s.logger.Info().Int64("userID", userID).Msg("Password reset completed")

	return nil
}

// ChangePassword overwrites the password after verifying the current one
func (s *AuthService) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.NewValidationError("passwords do not match")
	}
	if err := s.validatePassword(req.NewPassword); err != nil {
		return err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("change password lookup error: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if err := s.tokenRepo.RevokeAllUserTokens(ctx, user.ID); err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to revoke refresh tokens after password change")
	}

	return nil
}

// RefreshToken rotates a refresh token and issues a new pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) ||
			errors.Is(err, apperrors.ErrTokenExpired) ||
			errors.Is(err, apperrors.ErrTokenRevoked) {
			return nil, err
		}
		return nil, fmt.Errorf("token validation error: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrTokenInvalid
	}

	// Rotation: the presented token is single use
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// SetupAdmin promotes or creates the configured admin account. The call is
// idempotent and guarded by the setup key.
func (s *AuthService) SetupAdmin(ctx context.Context, setupKey string) (*dto.UserResponse, error) {
	if s.cfg.Admin.SetupKey == "" || setupKey != s.cfg.Admin.SetupKey {
		return nil, apperrors.ErrInvalidSetupKey
	}
	if s.cfg.Admin.Username == "" {
		return nil, apperrors.NewBadRequestError("no admin username configured")
	}

	password := s.cfg.Admin.SetupPassword
	if password == "" {
		password = s.cfg.Admin.Password
	}
	if password == "" {
		return nil, apperrors.NewBadRequestError("no admin password configured")
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.userRepo.GetByUsername(ctx, s.cfg.Admin.Username)
	if err == nil {
		if user.Role != models.RoleSuperAdmin {
			if err := s.userRepo.SetRole(ctx, user.ID, models.RoleSuperAdmin); err != nil {
				return nil, fmt.Errorf("error promoting admin account: %w", err)
			}
			user.Role = models.RoleSuperAdmin
		}
		if !user.IsActive {
			if err := s.userRepo.SetActive(ctx, user.ID, true); err != nil {
				return nil, fmt.Errorf("error activating admin account: %w", err)
			}
			user.IsActive = true
		}
		// The setup call is the recovery path for a lost admin
		// password, so the configured one always wins.
		if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
			return nil, fmt.Errorf("error resetting admin password: %w", err)
		}
		user.Password = hashedPassword
		if err := s.tokenRepo.RevokeAllUserTokens(ctx, user.ID); err != nil {
			s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to revoke refresh tokens after admin setup")
		}
		resp := dto.FromUser(user)
		return &resp, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("admin lookup error: %w", err)
	}

	admin := &models.User{
		Username:    s.cfg.Admin.Username,
		Password:    hashedPassword,
		Name:        s.cfg.Admin.Username,
		Position:    "Administrator",
		PhoneNumber: "",
		Email:       "",
		Role:        models.RoleSuperAdmin,
		IsActive:    true,
	}

	adminID, err := s.userRepo.Create(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("error creating admin account: %w", err)
	}
	admin.ID = adminID

	s.logger.Info().Int64("userID", adminID).Msg("Admin account created via setup endpoint")

	resp := dto.FromUser(admin)
	return &resp, nil
}

// CleanupExpiredCredentials purges expired refresh tokens and stale
// password reset tokens. Failures are logged and skipped so one bad run
// does not stop the next.
func (s *AuthService) CleanupExpiredCredentials(ctx context.Context) {
	removed, err := s.tokenRepo.CleanupExpiredTokens(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to clean up expired refresh tokens")
	} else if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("Expired refresh tokens cleaned up")
	}

	if err := s.resetRepo.DeleteExpiredTokens(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Failed to clean up expired reset tokens")
	}
}

// StartCredentialCleanup runs CleanupExpiredCredentials once immediately
// and then on every tick until the context is cancelled.
func (s *AuthService) StartCredentialCleanup(ctx context.Context, interval time.Duration) {
	s.CleanupExpiredCredentials(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CleanupExpiredCredentials(ctx)
		}
	}
}

// generateTokenResponse creates and persists a token pair for a user
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}
