package models

// RoleType defines the user role type
type RoleType string

const (
	RoleUser       RoleType = "USER"
	RoleAdmin      RoleType = "ADMIN"
	RoleSuperAdmin RoleType = "SUPER_ADMIN"
)

// IsAdmin reports whether the role carries administrative privileges.
func (r RoleType) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ScheduleStatus defines the lifecycle state of a visit schedule
type ScheduleStatus string

const (
	SchedulePlanned   ScheduleStatus = "PLANNED"
	ScheduleDone      ScheduleStatus = "DONE"
	ScheduleCancelled ScheduleStatus = "CANCELLED"
)

// TravelOrigin labels which computed commute duration was stored
type TravelOrigin string

const (
	OriginOffice TravelOrigin = "OFFICE"
	OriginHome   TravelOrigin = "HOME"
)
