package dto

import "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"

// DashboardOverview carries the headline counts for the admin landing page
type DashboardOverview struct {
	TotalStudents       int `json:"totalStudents" example:"480"`
	HousedStudents      int `json:"housedStudents" example:"312"`
	TotalHostels        int `json:"totalHostels" example:"4"`
	TotalRooms          int `json:"totalRooms" example:"120"`
	AvailableRooms      int `json:"availableRooms" example:"31"`
	PendingApplications int `json:"pendingApplications" example:"26"`
}

// HostelDashboardEntry is the per-hostel breakdown in the detailed dashboard
type HostelDashboardEntry struct {
	HostelID         int64  `json:"hostelId" example:"1"`
	HostelName       string `json:"hostelName" example:"Sunrise Hostel"`
	Gender           string `json:"gender" example:"Male"`
	TotalRooms       int    `json:"totalRooms" example:"24"`
	AvailableRooms   int    `json:"availableRooms" example:"9"`
	TotalSeats       int    `json:"totalSeats" example:"72"`
	OccupiedSeats    int    `json:"occupiedSeats" example:"51"`
	DamagedRooms     int    `json:"damagedRooms" example:"1"`
	MaintenanceRooms int    `json:"maintenanceRooms" example:"2"`
	HousedStudents   int    `json:"housedStudents" example:"51"`
}

// ApplicationStatusCounts breaks applications down by status
type ApplicationStatusCounts struct {
	Pending      int `json:"pending" example:"26"`
	Approved     int `json:"approved" example:"312"`
	Rejected     int `json:"rejected" example:"40"`
	Cancelled    int `json:"cancelled" example:"12"`
	Disallocated int `json:"disallocated" example:"8"`
}

// DashboardDataTotals carries the headline counts for the data dump
type DashboardDataTotals struct {
	Admins   int `json:"admins" example:"5"`
	Students int `json:"students" example:"480"`
	Hostels  int `json:"hostels" example:"4"`
}

// DashboardData is the full listing dump of admins, students and hostels
type DashboardData struct {
	Totals   DashboardDataTotals `json:"totals"`
	Admins   []*models.Admin     `json:"admins"`
	Students []*models.Student   `json:"students"`
	Hostels  []*models.Hostel    `json:"hostels"`
}

// DetailedDashboard is the full dashboard payload, cached on the read path
type DetailedDashboard struct {
	Overview     DashboardOverview       `json:"overview"`
	Hostels      []HostelDashboardEntry  `json:"hostels"`
	Applications ApplicationStatusCounts `json:"applications"`
	Blacklisted  int                     `json:"blacklistedStudents" example:"3"`
}
