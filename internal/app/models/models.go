package models

// Role defines the account role type
type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// ApplicationStatus tracks a hostel application through its lifecycle
type ApplicationStatus string

const (
	// StatusNotApplied is the student-side status before any application exists
	StatusNotApplied   ApplicationStatus = "NOT_APPLIED"
	StatusPending      ApplicationStatus = "PENDING"
	StatusApproved     ApplicationStatus = "APPROVED"
	StatusRejected     ApplicationStatus = "REJECTED"
	StatusCancelled    ApplicationStatus = "CANCELLED"
	StatusDisallocated ApplicationStatus = "DISALLOCATED"
)

// IsValidProcessedStatus reports whether s is a status an application can
// carry (the student-only NOT_APPLIED is excluded)
func IsValidProcessedStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusDisallocated:
		return true
	}
	return false
}

// RoomStatus is the operational state of a room. empty and filled are derived
// from occupancy; damaged and maintenance are set by staff and stick until
// staff clears them.
type RoomStatus string

const (
	RoomEmpty       RoomStatus = "empty"
	RoomFilled      RoomStatus = "filled"
	RoomDamaged     RoomStatus = "damaged"
	RoomMaintenance RoomStatus = "maintenance"
)

// IsValidRoomStatus reports whether s is a recognized room status
func IsValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomEmpty, RoomFilled, RoomDamaged, RoomMaintenance:
		return true
	}
	return false
}

// Gender restricts hostel eligibility
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderCoed   Gender = "Co-ed"
	GenderOther  Gender = "Other"
)
