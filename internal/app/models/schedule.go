package models

import "time"

// Schedule defines a planned school visit based on the 'schedules' table
type Schedule struct {
	ID        int64          `json:"id" db:"id"`
	UserID    int64          `json:"userId" db:"user_id"`
	SchoolID  int64          `json:"schoolId" db:"school_id"`
	VisitDate time.Time      `json:"visitDate" db:"visit_date"`
	StartTime string         `json:"startTime" db:"start_time"` // HH:MM, 24h clock
	EndTime   string         `json:"endTime" db:"end_time"`
	Purpose   string         `json:"purpose" db:"purpose"`
	Status    ScheduleStatus `json:"status" db:"status"`
	Memo      *string        `json:"memo,omitempty" db:"memo"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	School    *School        `json:"school,omitempty"` // Relation, no db tag
}
