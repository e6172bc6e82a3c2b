package dto

import (
	"time"

	"github.com/schoolsafe/backend/internal/app/models"
)

// UserResponse represents a user record with the password excluded
type UserResponse struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	Name            string    `json:"name"`
	Position        string    `json:"position"`
	PhoneNumber     string    `json:"phoneNumber"`
	Email           string    `json:"email"`
	Department      *string   `json:"department,omitempty"`
	Role            string    `json:"role"`
	IsActive        bool      `json:"isActive"`
	ProfilePhotoURL *string   `json:"profilePhotoUrl,omitempty"`
	HomeAddress     *string   `json:"homeAddress,omitempty"`
	OfficeAddress   *string   `json:"officeAddress,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromUser shapes a user model into its public representation
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		Name:            user.Name,
		Position:        user.Position,
		PhoneNumber:     user.PhoneNumber,
		Email:           user.Email,
		Department:      user.Department,
		Role:            string(user.Role),
		IsActive:        user.IsActive,
		ProfilePhotoURL: user.ProfilePhotoURL,
		HomeAddress:     user.HomeAddress,
		OfficeAddress:   user.OfficeAddress,
		CreatedAt:       user.CreatedAt,
	}
}

// UpdateAddressRequest replaces both address fields (PUT semantics)
type UpdateAddressRequest struct {
	HomeAddress   string `json:"homeAddress" binding:"required"`
	OfficeAddress string `json:"officeAddress" binding:"required"`
}

// ActivateUserRequest flips the account activation gate
type ActivateUserRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
