package dto

import "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"

// RegisterStudentRequest is the payload for student registration
type RegisterStudentRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Asha Patil"`
	Email       string `json:"email" binding:"required,email" example:"asha@college.edu"`
	PNR         string `json:"pnr" binding:"required,pnr" example:"PNR2024001"`
	Password    string `json:"password" binding:"required,min=8" example:"s3cretpass"`
	Gender      string `json:"gender" binding:"required,oneof=Male Female Other" example:"Female"`
	Year        string `json:"year" binding:"required,oneof=1st 2nd 3rd 4th" example:"2nd"`
	Phone       string `json:"phone" example:"9876543210"`
	Address     string `json:"address"`
	ParentName  string `json:"parentName"`
	ParentPhone string `json:"parentPhone"`
}

// LoginStudentRequest is the payload for student login. Identifier accepts
// either the email or the PNR.
type LoginStudentRequest struct {
	Identifier string `json:"email" binding:"required" example:"asha@college.edu"`
	Password   string `json:"password" binding:"required" example:"s3cretpass"`
}

// RegisterAdminRequest is the payload for admin registration
type RegisterAdminRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=100" example:"R. Kulkarni"`
	Email           string `json:"email" binding:"required,email" example:"warden@college.edu"`
	AdminID         string `json:"adminId" binding:"required" example:"WARDEN01"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Phone           string `json:"phone"`
}

// RegisterSuperadminRequest additionally carries the bootstrap passkey
type RegisterSuperadminRequest struct {
	RegisterAdminRequest
	Passkey string `json:"passKey" binding:"required"`
}

// LoginAdminRequest is the payload for admin login
type LoginAdminRequest struct {
	AdminID  string `json:"adminId" binding:"required" example:"WARDEN01"`
	Password string `json:"password" binding:"required"`
}

// StudentTokenResponse carries the issued token and the student profile
type StudentTokenResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn" example:"604800"`
	Student   *models.Student `json:"user"`
}

// AdminTokenResponse carries the issued token and the admin profile
type AdminTokenResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int           `json:"expiresIn" example:"604800"`
	Admin     *models.Admin `json:"admin"`
}
