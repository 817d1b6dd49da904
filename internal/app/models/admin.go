package models

import "time"

// Admin defines the staff model based on the 'admins' table. AdminID is the
// human-facing staff code used for login; hostel ownership lives on the
// hostels table.
type Admin struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"R. Kulkarni"`
	Email     string    `json:"email" db:"email" example:"warden@college.edu"`
	AdminID   string    `json:"adminId" db:"admin_id" example:"WARDEN01"`
	Password  string    `json:"-" db:"password"`
	Phone     string    `json:"phone" db:"phone"`
	Role      Role      `json:"role" db:"role" example:"admin"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Hostels managed by this admin (populated when needed)
	Hostels []*Hostel `json:"hostels,omitempty"`
}
