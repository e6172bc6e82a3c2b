package dto

// CreateScheduleRequest represents visit schedule creation data.
// VisitDate uses YYYY-MM-DD, times use HH:MM.
type CreateScheduleRequest struct {
	SchoolID  int64  `json:"schoolId" binding:"required,min=1"`
	VisitDate string `json:"visitDate" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Purpose   string `json:"purpose" binding:"required"`
	Memo      string `json:"memo"`
}

// UpdateScheduleRequest replaces a schedule's mutable fields
type UpdateScheduleRequest struct {
	SchoolID  int64  `json:"schoolId" binding:"required,min=1"`
	VisitDate string `json:"visitDate" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Purpose   string `json:"purpose" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=PLANNED DONE CANCELLED"`
	Memo      string `json:"memo"`
}

// ScheduleFilter narrows schedule listings; zero values mean no filter.
// From and To bound VisitDate inclusively for calendar feeds.
type ScheduleFilter struct {
	UserID   *int64
	SchoolID *int64
	From     string
	To       string
}
