package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/config"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
	"github.com/schoolsafe/backend/internal/pkg/auth"
)

type authFixture struct {
	svc       *AuthService
	userRepo  *mockUserRepo
	tokenRepo *mockTokenRepo
	resetRepo *mockResetRepo
	cfg       *config.Config
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Admin.SetupKey = "setup-key"

	userRepo := newMockUserRepo()
	tokenRepo := newMockTokenRepo()
	resetRepo := newMockResetRepo()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})

	svc := NewAuthService(userRepo, tokenRepo, resetRepo, jwtService, nil, cfg, zerolog.Nop())

	return &authFixture{
		svc:       svc,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		resetRepo: resetRepo,
		cfg:       cfg,
	}
}

func (f *authFixture) seedUser(t *testing.T, username, password string, active bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return f.userRepo.add(&models.User{
		Username:    username,
		Password:    hash,
		Name:        "Test User",
		Position:    "instructor",
		PhoneNumber: "010-1234-5678",
		Email:       username + "@example.com",
		Role:        models.RoleUser,
		IsActive:    active,
	})
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "alice", "password", true)
	ctx := context.Background()

	resp, err := f.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, "alice", resp.User.Username)

	// The refresh token must be persisted
	userID, _, err := f.tokenRepo.GetTokenByValue(ctx, resp.Token.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "alice", "password", true)
	f.seedUser(t, "pending", "password", false)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice", "nope"},
		{"unknown user", "nobody", "password"},
		{"inactive account", "pending", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Login(ctx, &dto.LoginRequest{Username: tt.username, Password: tt.password})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestLogin_ConfiguredAdminBypass(t *testing.T) {
	f := newAuthFixture(t)
	f.cfg.Admin.Username = "root"
	f.cfg.Admin.Password = "root-pass"

	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{Username: "root", Password: "root-pass"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, string(models.RoleSuperAdmin), string(resp.User.Role))

	// The synthetic account has no database row, so no refresh token is issued
	assert.Empty(t, resp.Token.RefreshToken)
	assert.Empty(t, f.tokenRepo.tokens)
}

func TestSignup(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Signup(ctx, &dto.SignupRequest{
		Username:    "newbie",
		Password:    "secret",
		Name:        "New Person",
		Position:    "instructor",
		PhoneNumber: "01012345678",
		Email:       "newbie@example.com",
	}, nil)
	require.NoError(t, err)
	require.NotZero(t, resp.UserID)

	user, err := f.userRepo.GetByID(ctx, resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.IsActive, "new accounts start inactive")
	assert.Equal(t, "010-1234-5678", user.PhoneNumber, "phone number is normalized at signup")
	assert.NotEqual(t, "secret", user.Password, "password is stored hashed")
}

func TestSignup_DuplicateUsername(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "taken", "password", true)

	_, err := f.svc.Signup(context.Background(), &dto.SignupRequest{
		Username:    "taken",
		Password:    "secret",
		Name:        "Other Person",
		Position:    "instructor",
		PhoneNumber: "01012345678",
		Email:       "other@example.com",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestSignup_InvalidInput(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Signup(ctx, &dto.SignupRequest{
		Username: "x", Password: "abc", Name: "n", Position: "p",
		PhoneNumber: "01012345678", Email: "x@example.com",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "too short password")

	_, err = f.svc.Signup(ctx, &dto.SignupRequest{
		Username: "x", Password: "secret", Name: "n", Position: "p",
		PhoneNumber: "not-a-phone", Email: "x@example.com",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "invalid phone number")
}

func TestFindID(t *testing.T) {
	f := newAuthFixture(t)
	alice := f.seedUser(t, "alice", "password", true)
	bob := f.seedUser(t, "bob", "password", true)
	bob.Name = alice.Name
	inactive := f.seedUser(t, "ghost", "password", false)
	inactive.Name = alice.Name
	ctx := context.Background()

	resp, err := f.svc.FindID(ctx, &dto.FindIDRequest{Name: alice.Name, PhoneNumber: "010-1234-5678"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, resp.Usernames, "inactive accounts are excluded")

	_, err = f.svc.FindID(ctx, &dto.FindIDRequest{Name: "Unknown", PhoneNumber: "010-1234-5678"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestPasswordResetFlow(t *testing.T) {
	f := newAuthFixture(t)
	user := f.seedUser(t, "alice", "old-password", true)
	ctx := context.Background()

	// A live session exists before the reset
	_, err := f.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "old-password"})
	require.NoError(t, err)
	require.Equal(t, 1, f.tokenRepo.activeTokensFor(user.ID))

	resp, err := f.svc.RequestPasswordReset(ctx, &dto.ResetPasswordRequest{
		Username: "alice", Name: user.Name, PhoneNumber: "010-1234-5678",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ResetToken)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	err = f.svc.ConfirmPasswordReset(ctx, &dto.ConfirmResetPasswordRequest{
		Token: resp.ResetToken, NewPassword: "new-password", ConfirmPassword: "new-password",
	})
	require.NoError(t, err)

	// New password works, the old one does not, and sessions were revoked
	_, err = f.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "old-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "new-password"})
	assert.NoError(t, err)
	assert.Equal(t, 1, f.tokenRepo.activeTokensFor(user.ID), "pre-reset sessions were revoked")

	// The token is single use
	err = f.svc.ConfirmPasswordReset(ctx, &dto.ConfirmResetPasswordRequest{
		Token: resp.ResetToken, NewPassword: "another", ConfirmPassword: "another",
	})
	assert.ErrorIs(t, err, apperrors.ErrResetTokenUsed)
}

func TestConfirmPasswordReset_Rejections(t *testing.T) {
	f := newAuthFixture(t)
	user := f.seedUser(t, "alice", "password", true)
	ctx := context.Background()

	err := f.svc.ConfirmPasswordReset(ctx, &dto.ConfirmResetPasswordRequest{
		Token: "whatever", NewPassword: "one", ConfirmPassword: "two",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "mismatched passwords")

	err = f.svc.ConfirmPasswordReset(ctx, &dto.ConfirmResetPasswordRequest{
		Token: "unknown-token", NewPassword: "new-password", ConfirmPassword: "new-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken, "unknown token")

	require.NoError(t, f.resetRepo.CreateToken(ctx, user.ID, "expired-token", time.Now().Add(-time.Minute)))
	err = f.svc.ConfirmPasswordReset(ctx, &dto.ConfirmResetPasswordRequest{
		Token: "expired-token", NewPassword: "new-password", ConfirmPassword: "new-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken, "expired token")
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "alice", "old-password", true)
	ctx := context.Background()

	err := f.svc.ChangePassword(ctx, &dto.ChangePasswordRequest{
		Username: "alice", CurrentPassword: "wrong",
		NewPassword: "new-password", ConfirmPassword: "new-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = f.svc.ChangePassword(ctx, &dto.ChangePasswordRequest{
		Username: "nobody", CurrentPassword: "whatever",
		NewPassword: "new-password", ConfirmPassword: "new-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound, "unknown account is reported as such")

	err = f.svc.ChangePassword(ctx, &dto.ChangePasswordRequest{
		Username: "alice", CurrentPassword: "old-password",
		NewPassword: "new-password", ConfirmPassword: "new-password",
	})
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "new-password"})
	assert.NoError(t, err)
}

func TestRefreshToken(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "alice", "password", true)
	ctx := context.Background()

	login, err := f.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "password"})
	require.NoError(t, err)

	refreshed, err := f.svc.RefreshToken(ctx, login.Token.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.Token.RefreshToken, refreshed.RefreshToken)

	// The presented token is single use
	_, err = f.svc.RefreshToken(ctx, login.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	_, err = f.svc.RefreshToken(ctx, "unknown-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	_, err = f.svc.RefreshToken(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestRefreshToken_InactiveAccount(t *testing.T) {
	f := newAuthFixture(t)
	user := f.seedUser(t, "alice", "password", true)
	ctx := context.Background()

	login, err := f.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "password"})
	require.NoError(t, err)

	// Deactivation cuts off refresh
	require.NoError(t, f.userRepo.SetActive(ctx, user.ID, false))
	_, err = f.svc.RefreshToken(ctx, login.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestCleanupExpiredCredentials(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.tokenRepo.CreateToken(ctx, "live", 1, time.Now().Add(time.Hour)))
	require.NoError(t, f.tokenRepo.CreateToken(ctx, "stale", 1, time.Now().Add(-time.Hour)))
	require.NoError(t, f.resetRepo.CreateToken(ctx, 1, "stale-reset", time.Now().Add(-time.Minute)))

	f.svc.CleanupExpiredCredentials(ctx)

	_, _, err := f.tokenRepo.GetTokenByValue(ctx, "live")
	assert.NoError(t, err, "live tokens survive the purge")
	_, _, err = f.tokenRepo.GetTokenByValue(ctx, "stale")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	_, _, _, err = f.resetRepo.GetTokenInfo(ctx, "stale-reset")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestSetupAdmin(t *testing.T) {
	f := newAuthFixture(t)
	f.cfg.Admin.Username = "root"
	f.cfg.Admin.SetupPassword = "root-pass"
	ctx := context.Background()

	_, err := f.svc.SetupAdmin(ctx, "wrong-key")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSetupKey)

	resp, err := f.svc.SetupAdmin(ctx, "setup-key")
	require.NoError(t, err)
	assert.Equal(t, "root", resp.Username)
	assert.Equal(t, string(models.RoleSuperAdmin), resp.Role)
	assert.True(t, resp.IsActive)

	// The call is idempotent
	again, err := f.svc.SetupAdmin(ctx, "setup-key")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID)

	// The created account can log in with the setup password
	login, err := f.svc.Login(ctx, &dto.LoginRequest{Username: "root", Password: "root-pass"})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleSuperAdmin), login.User.Role)
}

func TestSetupAdmin_PromotesExistingAccount(t *testing.T) {
	f := newAuthFixture(t)
	f.cfg.Admin.Username = "alice"
	f.cfg.Admin.SetupPassword = "root-pass"
	user := f.seedUser(t, "alice", "forgotten", false)
	ctx := context.Background()

	resp, err := f.svc.SetupAdmin(ctx, "setup-key")
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, string(models.RoleSuperAdmin), resp.Role)
	assert.True(t, resp.IsActive)

	// The configured password replaces whatever the account had
	_, err = f.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "forgotten"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "old password no longer works")
	login, err := f.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "root-pass"})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleSuperAdmin), login.User.Role)
}

func TestSetupAdmin_RevokesExistingSessions(t *testing.T) {
	f := newAuthFixture(t)
	f.cfg.Admin.Username = "alice"
	f.cfg.Admin.SetupPassword = "root-pass"
	user := f.seedUser(t, "alice", "password", true)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "password"})
	require.NoError(t, err)
	require.Equal(t, 1, f.tokenRepo.activeTokensFor(user.ID))

	_, err = f.svc.SetupAdmin(ctx, "setup-key")
	require.NoError(t, err)
	assert.Zero(t, f.tokenRepo.activeTokensFor(user.ID), "pre-setup sessions were revoked")
}
