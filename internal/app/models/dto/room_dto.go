package dto

import "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"

// CreateRoomRequest adds a room to a hostel
type CreateRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required" example:"101"`
	Floor      string `json:"floor" binding:"required" example:"1"`
	Capacity   int    `json:"capacity" binding:"required,gt=0" example:"3"`
	Notes      string `json:"notes"`
}

// UpdateRoomRequest carries optional room fields; only non-nil values are applied
type UpdateRoomRequest struct {
	Capacity *int    `json:"capacity"`
	Notes    *string `json:"notes"`
}

// ChangeRoomStatusRequest sets a room's status
type ChangeRoomStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=empty filled damaged maintenance" example:"maintenance"`
	Notes  string `json:"notes"`
}

// RoomListResponse is a list of rooms with its count
type RoomListResponse struct {
	Rooms []*models.Room `json:"rooms"`
	Total int            `json:"total" example:"24"`
}

// FloorSeatMap summarizes seat usage on one floor of a hostel
type FloorSeatMap struct {
	Floor         string `json:"floor" example:"1"`
	TotalRooms    int    `json:"totalRooms" example:"12"`
	TotalSeats    int    `json:"totalSeats" example:"36"`
	OccupiedSeats int    `json:"occupiedSeats" example:"21"`
}

// HostelInventoryResponse is the seat level inventory view of a hostel
type HostelInventoryResponse struct {
	HostelID         int64          `json:"hostelId" example:"1"`
	HostelName       string         `json:"hostelName" example:"Sunrise Hostel"`
	TotalRooms       int            `json:"totalRooms" example:"24"`
	AvailableRooms   int            `json:"availableRooms" example:"9"`
	TotalSeats       int            `json:"totalSeats" example:"72"`
	OccupiedSeats    int            `json:"occupiedSeats" example:"51"`
	DamagedRooms     int            `json:"damagedRooms" example:"1"`
	MaintenanceRooms int            `json:"maintenanceRooms" example:"2"`
	Floors           []FloorSeatMap `json:"floors"`
}
