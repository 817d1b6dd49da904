package models

import "time"

// Room defines the room model based on the 'rooms' table. A room is
// addressed canonically by ID; (hostel_id, room_number, floor) is a
// secondary unique key for natural-key lookup in the approval flow.
type Room struct {
	ID             int64      `json:"id" db:"id" example:"1"`
	HostelID       int64      `json:"hostelId" db:"hostel_id"`
	RoomNumber     string     `json:"roomNumber" db:"room_number" example:"101"`
	Floor          string     `json:"floor" db:"floor" example:"1"`
	Capacity       int        `json:"capacity" db:"capacity" example:"2"`
	OccupiedSpaces int        `json:"occupiedSpaces" db:"occupied_spaces"`
	Status         RoomStatus `json:"status" db:"status" example:"empty"`
	Notes          string     `json:"notes" db:"notes"`
	LastInspection *time.Time `json:"lastInspection,omitempty" db:"last_inspection"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`

	// Occupants of this room (populated when needed). Row count must equal
	// OccupiedSpaces.
	Occupants []Occupant `json:"assignedStudents,omitempty"`
}

// Occupant is one seat taken in a room: the student reference plus the
// denormalized name/PNR snapshot kept in lockstep with the assignment.
type Occupant struct {
	RoomID     int64     `json:"-" db:"room_id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	Name       string    `json:"name" db:"student_name"`
	PNR        string    `json:"pnr" db:"student_pnr"`
	AssignedAt time.Time `json:"assignedAt" db:"assigned_at"`
}

// HasCapacity reports whether the room can seat another student
func (r *Room) HasCapacity() bool {
	return r.OccupiedSpaces < r.Capacity
}

// DerivedStatus returns the occupancy-derived status. Staff-set damaged and
// maintenance states are preserved; otherwise a room is filled only at full
// capacity.
func (r *Room) DerivedStatus() RoomStatus {
	if r.Status == RoomDamaged || r.Status == RoomMaintenance {
		return r.Status
	}
	if r.OccupiedSpaces >= r.Capacity {
		return RoomFilled
	}
	return RoomEmpty
}
