package dto

import "time"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// LoginResponse carries the session token plus the sanitized user record
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// SignupRequest represents the multipart signup form. The profile photo
// travels separately as the "profilePhoto" file part.
type SignupRequest struct {
	Username    string `form:"username" binding:"required"`
	Password    string `form:"password" binding:"required"`
	Name        string `form:"name" binding:"required"`
	Position    string `form:"position" binding:"required"`
	PhoneNumber string `form:"phoneNumber" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	Department  string `form:"department"`
}

// SignupResponse returns the id of the created account
type SignupResponse struct {
	UserID int64 `json:"userId"`
}

// FindIDRequest looks up usernames by profile fields
type FindIDRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// FindIDResponse lists every active username matching name and phone;
// several accounts may share both fields.
type FindIDResponse struct {
	Usernames []string `json:"usernames"`
}

// ResetPasswordRequest verifies account ownership before a reset token is issued
type ResetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// ResetPasswordResponse carries the one-time reset token
type ResetPasswordResponse struct {
	ResetToken string    `json:"resetToken"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// ConfirmResetPasswordRequest consumes a reset token and sets a new password
type ConfirmResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// ChangePasswordRequest overwrites the password after verifying the current one
type ChangePasswordRequest struct {
	Username        string `json:"username" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
