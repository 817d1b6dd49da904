package dto

import "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"

// CreateHostelRequest is the payload for registering a new hostel
type CreateHostelRequest struct {
	Name         string   `json:"name" binding:"required" example:"Sunrise Hostel"`
	Description  string   `json:"description" example:"Boys hostel near the main gate"`
	Location     string   `json:"location" binding:"required" example:"North Campus"`
	Warden       string   `json:"warden" binding:"required" example:"Mr. Deshmukh"`
	WardenPhone  string   `json:"wardenPhone" binding:"required" example:"9876543210"`
	Gender       string   `json:"gender" binding:"required,oneof=Male Female Co-ed" example:"Male"`
	RentPerMonth float64  `json:"rentPerMonth" binding:"required,gt=0" example:"3500"`
	Amenities    []string `json:"amenities"`
	Rules        []string `json:"rules"`
	Image        string   `json:"image"`
	AdminID      *int64   `json:"adminId"`
}

// UpdateHostelRequest carries optional fields; only non-nil values are applied
type UpdateHostelRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location"`
	Warden       *string  `json:"warden"`
	WardenPhone  *string  `json:"wardenPhone"`
	RentPerMonth *float64 `json:"rentPerMonth"`
	Amenities    []string `json:"amenities"`
	Rules        []string `json:"rules"`
	Image        *string  `json:"image"`
}

// ChangeHostelAdminRequest reassigns the managing admin of a hostel
type ChangeHostelAdminRequest struct {
	AdminID int64 `json:"adminId" binding:"required" example:"3"`
}

// HostelListResponse is a list of hostels with its count
type HostelListResponse struct {
	Hostels []*models.Hostel `json:"hostels"`
	Total   int              `json:"total" example:"4"`
}
