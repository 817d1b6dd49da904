package models

import "time"

// Hostel defines the hostel model based on the 'hostels' table.
//
// AvailableRooms is a derived counter, not authoritative: it is recomputed
// from room counts after every occupancy or status change.
type Hostel struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	Name           string    `json:"name" db:"name" example:"Sahyadri Hostel"`
	Description    string    `json:"description" db:"description"`
	Location       string    `json:"location" db:"location" example:"North Campus"`
	Warden         string    `json:"warden" db:"warden"`
	WardenPhone    string    `json:"wardenPhone" db:"warden_phone"`
	Capacity       int       `json:"capacity" db:"capacity" example:"200"`
	AvailableRooms int       `json:"availableRooms" db:"available_rooms"`
	Gender         Gender    `json:"gender" db:"gender" example:"Male"`
	RentPerMonth   float64   `json:"rentPerMonth" db:"rent_per_month"`
	Amenities      []string  `json:"amenities" db:"amenities"`
	Rules          []string  `json:"rules" db:"rules"`
	Image          string    `json:"image" db:"image"`
	AdminID        *int64    `json:"adminId,omitempty" db:"admin_id"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	// Admin managing this hostel (populated when needed)
	Admin *Admin `json:"admin,omitempty"`
}
