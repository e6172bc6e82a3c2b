package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64     `json:"id" db:"id" example:"1"`                                              // Unique identifier for the user
	Username        string    `json:"username" db:"username" example:"alice"`                              // Login name, unique across all users
	Password        string    `json:"-" db:"password"`                                                     // Bcrypt hash of the user's password (excluded from JSON)
	Name            string    `json:"name" db:"name" example:"Alice Kim"`                                  // Display name
	Position        string    `json:"position" db:"position" example:"safety instructor"`                  // Job position within the program
	PhoneNumber     string    `json:"phoneNumber" db:"phone_number" example:"010-0000-0000"`               // Normalized phone number
	Email           string    `json:"email" db:"email" example:"alice@example.com"`                        // Contact email address
	Department      *string   `json:"department,omitempty" db:"department"`                                // Department name (nullable)
	Role            RoleType  `json:"role" db:"role" example:"USER"`                                       // USER, ADMIN or SUPER_ADMIN
	IsActive        bool      `json:"isActive" db:"is_active" example:"true"`                              // Gates login; new accounts start inactive
	ProfilePhotoURL *string   `json:"profilePhotoUrl,omitempty" db:"profile_photo_url"`                    // URL of the profile photo (nullable)
	HomeAddress     *string   `json:"homeAddress,omitempty" db:"home_address"`                             // Home address (nullable)
	OfficeAddress   *string   `json:"officeAddress,omitempty" db:"office_address"`                         // Office address (nullable)
	CreatedAt       time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`            // Timestamp when the user was created
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`            // Timestamp when the user was last updated
}
