package dto

// TravelTimeData holds the computed commute durations in minutes. Either
// field may be absent; the save endpoint picks whichever is present.
type TravelTimeData struct {
	DurationFromOffice *int `json:"durationFromOffice" binding:"omitempty,min=0"`
	DurationFromHome   *int `json:"durationFromHome" binding:"omitempty,min=0"`
}

// SaveTravelTimeRequest upserts the travel time for a schedule
type SaveTravelTimeRequest struct {
	UserID         int64          `json:"userId" binding:"required,min=1"`
	ScheduleID     int64          `json:"scheduleId" binding:"required,min=1"`
	TravelTimeData TravelTimeData `json:"travelTimeData"`
}
