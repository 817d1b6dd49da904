package services

import (
	"context"
	"fmt"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/auth"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/logger"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/validation"
)

// AuthService handles registration and login for students and staff
type AuthService struct {
	studentStore      StudentStore
	adminStore        AdminStore
	jwtService        *auth.JWTService
	superadminPasskey string
}

// NewAuthService creates a new auth service instance
func NewAuthService(studentStore StudentStore, adminStore AdminStore, jwtService *auth.JWTService, superadminPasskey string) *AuthService {
	return &AuthService{
		studentStore:      studentStore,
		adminStore:        adminStore,
		jwtService:        jwtService,
		superadminPasskey: superadminPasskey,
	}
}

// RegisterStudent creates a student account and returns it with a token
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, *dto.StudentTokenResponse, error) {
	if !validation.IsValidPNR(req.PNR) {
		return nil, nil, fmt.Errorf("%w: pnr must be 6 to 12 uppercase alphanumeric characters", apperrors.ErrValidationFailed)
	}

	exists, err := s.studentStore.ExistsByEmailOrPNR(ctx, req.Email, req.PNR)
	if err != nil {
		return nil, nil, fmt.Errorf("error checking student: %w", err)
	}
	if exists {
		return nil, nil, apperrors.ErrStudentExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:              req.Name,
		Email:             req.Email,
		PNR:               req.PNR,
		Password:          hashed,
		Gender:            models.Gender(req.Gender),
		Year:              req.Year,
		Phone:             req.Phone,
		Address:           req.Address,
		ParentName:        req.ParentName,
		ParentPhone:       req.ParentPhone,
		ApplicationStatus: models.StatusNotApplied,
		IsActive:          true,
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		return nil, nil, fmt.Errorf("error creating student: %w", err)
	}

	token, err := s.issueStudentToken(student)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().Int64("studentId", student.ID).Str("pnr", student.PNR).Msg("Student registered")
	return student, token, nil
}

// LoginStudent authenticates a student by email or PNR
func (s *AuthService) LoginStudent(ctx context.Context, identifier, password string) (*models.Student, *dto.StudentTokenResponse, error) {
	student, err := s.studentStore.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}
	if !student.IsActive {
		return nil, nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(student.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issueStudentToken(student)
	if err != nil {
		return nil, nil, err
	}

	return student, token, nil
}

// RegisterAdmin creates a staff account with the admin role
func (s *AuthService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.Admin, error) {
	return s.registerStaff(ctx, req, models.RoleAdmin)
}

// RegisterSuperadmin creates a superadmin account after verifying the passkey
func (s *AuthService) RegisterSuperadmin(ctx context.Context, req *dto.RegisterSuperadminRequest) (*models.Admin, error) {
	if req.Passkey != s.superadminPasskey {
		return nil, apperrors.ErrInvalidPasskey
	}
	return s.registerStaff(ctx, &req.RegisterAdminRequest, models.RoleSuperadmin)
}

func (s *AuthService) registerStaff(ctx context.Context, req *dto.RegisterAdminRequest, role models.Role) (*models.Admin, error) {
	exists, err := s.adminStore.ExistsByEmailOrAdminID(ctx, req.Email, req.AdminID)
	if err != nil {
		return nil, fmt.Errorf("error checking admin: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAdminExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	admin := &models.Admin{
		Name:     req.Name,
		Email:    req.Email,
		AdminID:  req.AdminID,
		Password: hashed,
		Phone:    req.Phone,
		Role:     role,
		IsActive: true,
	}

	if err := s.adminStore.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("error creating admin: %w", err)
	}

	logger.Info().Int64("adminId", admin.ID).Str("role", string(role)).Msg("Staff account registered")
	return admin, nil
}

// LoginAdmin authenticates a staff account by email or staff code
func (s *AuthService) LoginAdmin(ctx context.Context, identifier, password string) (*models.Admin, *dto.AdminTokenResponse, error) {
	admin, err := s.adminStore.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	if admin == nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(admin.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin.ID, auth.SubjectAdmin, string(admin.Role), admin.AdminID)
	if err != nil {
		return nil, nil, fmt.Errorf("error generating token: %w", err)
	}

	return admin, &dto.AdminTokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Admin:     admin,
	}, nil
}

func (s *AuthService) issueStudentToken(student *models.Student) (*dto.StudentTokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(student.ID, auth.SubjectStudent, string(models.RoleStudent), student.PNR)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.StudentTokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Student:   student,
	}, nil
}
