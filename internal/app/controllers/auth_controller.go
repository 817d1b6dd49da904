package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/services"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/middleware"
)

// AuthController handles registration and login endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterStudent handles student registration
// @Summary Register a student
// @Description Creates a student account and returns a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentTokenResponse} "Student registered"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate email/PNR"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/student/register [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	_, token, err := c.authService.RegisterStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(token, "Student registered successfully"))
}

// LoginStudent handles student login
// @Summary Log in a student
// @Description Authenticates a student by email or PNR
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginStudentRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.StudentTokenResponse} "Logged in"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/student/login [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.LoginStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	_, token, err := c.authService.LoginStudent(ctx, req.Identifier, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(token, "Login successful"))
}

// RegisterAdmin handles admin registration
// @Summary Register an admin
// @Description Creates a staff account with the admin role
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterAdminRequest true "Admin information"
// @Success 201 {object} dto.APIResponse{data=models.Admin} "Admin registered"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate email/ID"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/admin/register [post]
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	admin, err := c.authService.RegisterAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(admin, "Admin registered successfully"))
}

// RegisterSuperadmin handles superadmin registration with the bootstrap passkey
// @Summary Register a superadmin
// @Description Creates a superadmin account after verifying the passkey
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterSuperadminRequest true "Superadmin information with passkey"
// @Success 201 {object} dto.APIResponse{data=models.Admin} "Superadmin registered"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid passkey"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/superadmin/register [post]
func (c *AuthController) RegisterSuperadmin(ctx *gin.Context) {
	var req dto.RegisterSuperadminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	admin, err := c.authService.RegisterSuperadmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(admin, "Superadmin registered successfully"))
}

// LoginAdmin handles staff login
// @Summary Log in a staff account
// @Description Authenticates an admin or superadmin by email or staff code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginAdminRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AdminTokenResponse} "Logged in"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/admin/login [post]
func (c *AuthController) LoginAdmin(ctx *gin.Context) {
	var req dto.LoginAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	_, token, err := c.authService.LoginAdmin(ctx, req.AdminID, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(token, "Login successful"))
}
