package dto

import "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"

// AssignRoomRequest places a student directly into a room by room id
type AssignRoomRequest struct {
	StudentID int64 `json:"studentId" binding:"required" example:"42"`
	HostelID  int64 `json:"hostelId" binding:"required" example:"1"`
	RoomID    int64 `json:"roomId" binding:"required" example:"7"`
}

// ChangeRoomRequest moves an already housed student into another room
type ChangeRoomRequest struct {
	StudentID int64 `json:"studentId" binding:"required" example:"42"`
	HostelID  int64 `json:"hostelId" binding:"required" example:"1"`
	RoomID    int64 `json:"roomId" binding:"required" example:"8"`
}

// ReassignRoomRequest re-houses a student without requiring an approved
// application, with an optional audit remark
type ReassignRoomRequest struct {
	StudentID int64  `json:"studentId" binding:"required" example:"42"`
	HostelID  int64  `json:"hostelId" binding:"required" example:"1"`
	RoomID    int64  `json:"roomId" binding:"required" example:"8"`
	Remark    string `json:"remark" example:"Moved after maintenance"`
}

// RemoveFromRoomRequest evicts a student from their current room
type RemoveFromRoomRequest struct {
	StudentID int64  `json:"studentId" binding:"required" example:"42"`
	Remark    string `json:"remark" example:"Disciplinary action"`
}

// AllocationResult reports the state of all affected records after an
// allocation operation completes
type AllocationResult struct {
	Student     *models.Student     `json:"student"`
	Room        *models.Room        `json:"room,omitempty"`
	Application *models.Application `json:"application,omitempty"`
}
