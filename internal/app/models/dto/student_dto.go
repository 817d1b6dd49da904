package dto

import "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"

// UpdateStudentRequest carries optional profile fields for a student
type UpdateStudentRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	ParentName  *string `json:"parentName"`
	ParentPhone *string `json:"parentPhone"`
	Year        *string `json:"year" binding:"omitempty,oneof=1st 2nd 3rd 4th"`
}

// BlacklistStudentRequest records why a student is being blacklisted
type BlacklistStudentRequest struct {
	Remarks string `json:"remarks" binding:"required" example:"Repeated curfew violations"`
}

// StudentListResponse is a list of students with its count
type StudentListResponse struct {
	Students []*models.Student `json:"students"`
	Total    int               `json:"total" example:"480"`
}

// AdminListResponse is a list of admins with its count
type AdminListResponse struct {
	Admins []*models.Admin `json:"admins"`
	Total  int             `json:"total" example:"6"`
}
