package dto

import "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"

// SubmitApplicationRequest is the payload for a hostel application
type SubmitApplicationRequest struct {
	HostelID         int64  `json:"hostelId" binding:"required" example:"1"`
	Branch           string `json:"branch" binding:"required" example:"Computer Engineering"`
	Caste            string `json:"caste" binding:"required"`
	DateOfBirth      string `json:"dateOfBirth" binding:"required" example:"2005-06-14"`
	AadharCard       string `json:"aadharCard" binding:"required"`
	AdmissionReceipt string `json:"admissionReceipt" binding:"required"`
}

// ApproveApplicationRequest identifies the target room by its natural key
// within the application's hostel
type ApproveApplicationRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required" example:"101"`
	Floor      string `json:"floor" binding:"required" example:"1"`
}

// RejectApplicationRequest carries the mandatory rejection reason
type RejectApplicationRequest struct {
	RejectionReason string `json:"rejectionReason" binding:"required" example:"Incomplete documents"`
}

// ApplicationListResponse is a list of applications with its count
type ApplicationListResponse struct {
	Applications []*models.Application `json:"applications"`
	Total        int                   `json:"total" example:"12"`
}
