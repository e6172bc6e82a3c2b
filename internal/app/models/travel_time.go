package models

import "time"

// TravelTime holds the computed commute duration for a schedule.
// Exactly one row exists per schedule; saves upsert on schedule_id.
type TravelTime struct {
	ID              int64        `json:"id" db:"id"`
	ScheduleID      int64        `json:"scheduleId" db:"schedule_id"`
	UserID          int64        `json:"userId" db:"user_id"`
	DurationMinutes int          `json:"durationMinutes" db:"duration_minutes"`
	Origin          TravelOrigin `json:"origin" db:"origin"`
	UpdatedAt       time.Time    `json:"updatedAt" db:"updated_at"`
}
