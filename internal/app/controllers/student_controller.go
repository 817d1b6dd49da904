package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/services"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/middleware"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
)

// StudentController handles student profile and management endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetProfile returns the authenticated student's own record
// @Summary Get own profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/me [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	studentID, ok := middleware.SubjectID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	student, err := c.studentService.GetByID(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Profile retrieved successfully"))
}

// UpdateProfile edits the authenticated student's own record
// @Summary Update own profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile updated"
// @Failure 400 {object} dto.APIResponse "Invalid data"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/me [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	studentID, ok := middleware.SubjectID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateProfile(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Profile updated successfully"))
}

// List returns students filtered by status and year
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by application status"
// @Param year query string false "Filter by year"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students"
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.studentService.List(ctx, ctx.Query("status"), ctx.Query("year"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.StudentListResponse{
		Students: students,
		Total:    len(students),
	}, "Students retrieved successfully"))
}

// GetByID returns a single student
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student retrieved successfully"))
}

// Blacklist flags a student against future allocations
// @Summary Blacklist a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.BlacklistStudentRequest true "Reason"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student blacklisted"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/blacklist [put]
func (c *StudentController) Blacklist(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.BlacklistStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.Blacklist(ctx, id, req.Remarks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student blacklisted successfully"))
}

// Unblacklist clears the flag
// @Summary Remove a student from the blacklist
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student unblacklisted"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/unblacklist [put]
func (c *StudentController) Unblacklist(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.Unblacklist(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student removed from blacklist successfully"))
}

// Delete removes a student account
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 400 {object} dto.APIResponse "Student still occupies a room"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student deleted successfully"))
}
