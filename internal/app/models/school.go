package models

import "time"

// School defines the school model based on the 'schools' table
type School struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Address       string    `json:"address" db:"address"`
	PhoneNumber   string    `json:"phoneNumber" db:"phone_number"`
	ContactPerson string    `json:"contactPerson" db:"contact_person"`
	Email         string    `json:"email" db:"email"`
	UserID        *int64    `json:"userId,omitempty" db:"user_id"` // Owning user (nullable for seeded schools)
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
