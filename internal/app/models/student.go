package models

import "time"

// Student defines the student model based on the 'students' table.
//
// RoomNumber, Floor and HostelName mirror the assigned room and are mutated
// only by the allocation service, together with AssignedRoomID.
type Student struct {
	ID                int64             `json:"id" db:"id" example:"1"`
	Name              string            `json:"name" db:"name" example:"Asha Patil"`
	Email             string            `json:"email" db:"email" example:"asha@college.edu"`
	PNR               string            `json:"pnr" db:"pnr" example:"PNR2024001"`
	Password          string            `json:"-" db:"password"`
	Gender            Gender            `json:"gender" db:"gender" example:"Female"`
	Year              string            `json:"year" db:"year" example:"2nd"`
	Phone             string            `json:"phone" db:"phone"`
	Address           string            `json:"address" db:"address"`
	ParentName        string            `json:"parentName" db:"parent_name"`
	ParentPhone       string            `json:"parentPhone" db:"parent_phone"`
	ApplicationStatus ApplicationStatus `json:"applicationStatus" db:"application_status" example:"NOT_APPLIED"`
	AssignedRoomID    *int64            `json:"assignedRoom,omitempty" db:"assigned_room_id"`
	RoomNumber        string            `json:"roomNumber" db:"room_number"`
	Floor             string            `json:"floor" db:"floor"`
	HostelName        string            `json:"hostelName" db:"hostel_name"`
	IsBlacklisted     bool              `json:"isBlacklisted" db:"is_blacklisted"`
	Remarks           string            `json:"remarks" db:"remarks"`
	IsActive          bool              `json:"isActive" db:"is_active"`
	CreatedAt         time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time         `json:"updatedAt" db:"updated_at"`
}
