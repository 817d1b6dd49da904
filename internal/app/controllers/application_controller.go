package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appauth "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/auth"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/services"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/middleware"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
)

// ApplicationController handles the application lifecycle endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
	allocationService  *services.AllocationService
	hostelScope        *appauth.HostelScope
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService, allocationService *services.AllocationService, hostelScope *appauth.HostelScope) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		allocationService:  allocationService,
		hostelScope:        hostelScope,
	}
}

// Submit handles a student filing an application
// @Summary Submit a hostel application
// @Description Files an application for the authenticated student
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitApplicationRequest true "Application details"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.APIResponse "Invalid data or duplicate application"
// @Failure 404 {object} dto.APIResponse "Hostel not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	studentID, ok := middleware.SubjectID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	app, err := c.applicationService.Submit(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(app, "Application submitted successfully"))
}

// GetOwn returns the authenticated student's application
// @Summary Get own application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application"
// @Failure 404 {object} dto.APIResponse "No application found"
// @Router /applications/me [get]
func (c *ApplicationController) GetOwn(ctx *gin.Context) {
	studentID, ok := middleware.SubjectID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	app, err := c.applicationService.GetOwn(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(app, "Application retrieved successfully"))
}

// Cancel lets a student withdraw their pending application
// @Summary Cancel own application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application cancelled"
// @Failure 400 {object} dto.APIResponse "Application already processed"
// @Failure 404 {object} dto.APIResponse "No application found"
// @Router /applications/me/cancel [put]
func (c *ApplicationController) Cancel(ctx *gin.Context) {
	studentID, ok := middleware.SubjectID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	app, err := c.applicationService.Cancel(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(app, "Application cancelled successfully"))
}

// List returns applications filtered by status, year and hostel
// @Summary List applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param year query string false "Filter by student year"
// @Param hostelId query int false "Filter by hostel"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse} "Applications"
// @Failure 400 {object} dto.APIResponse "Invalid filter"
// @Router /applications [get]
func (c *ApplicationController) List(ctx *gin.Context) {
	status := ctx.Query("status")
	year := ctx.Query("year")

	var hostelID int64
	if raw := ctx.Query("hostelId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hostel ID").WithField("hostelId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		hostelID = parsed
	}

	apps, err := c.applicationService.List(ctx, status, year, hostelID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ApplicationListResponse{
		Applications: apps,
		Total:        len(apps),
	}, "Applications retrieved successfully"))
}

// GetByID returns a single application
// @Summary Get application by ID
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	app, err := c.applicationService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(app, "Application retrieved successfully"))
}

// Approve approves a pending application and assigns a room by number and floor
// @Summary Approve an application
// @Description Approves the application and houses the student in the given room
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.ApproveApplicationRequest true "Target room"
// @Success 200 {object} dto.APIResponse{data=dto.AllocationResult} "Application approved"
// @Failure 400 {object} dto.APIResponse "Room full, already processed or invalid data"
// @Failure 403 {object} dto.APIResponse "Hostel not managed by caller"
// @Failure 404 {object} dto.APIResponse "Application or room not found"
// @Router /applications/{id}/approve [put]
func (c *ApplicationController) Approve(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ApproveApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if !c.inScopeForApplication(ctx, id) {
		return
	}

	result, err := c.allocationService.ApproveApplication(ctx, id, req.RoomNumber, req.Floor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Application approved successfully"))
}

// Reject rejects a pending application with a reason
// @Summary Reject an application
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.RejectApplicationRequest true "Rejection reason"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application rejected"
// @Failure 400 {object} dto.APIResponse "Already processed or approved"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Router /applications/{id}/reject [put]
func (c *ApplicationController) Reject(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.RejectApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if !c.inScopeForApplication(ctx, id) {
		return
	}

	app, err := c.allocationService.RejectApplication(ctx, id, req.RejectionReason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(app, "Application rejected successfully"))
}

// RejectByPNR rejects the application of the student with the given PNR
// @Summary Reject an application by student PNR
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pnr path string true "Student PNR"
// @Param request body dto.RejectApplicationRequest true "Rejection reason"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application rejected"
// @Failure 400 {object} dto.APIResponse "Already processed or approved"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Router /applications/pnr/{pnr}/reject [put]
func (c *ApplicationController) RejectByPNR(ctx *gin.Context) {
	pnr := ctx.Param("pnr")

	var req dto.RejectApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	app, err := c.allocationService.RejectApplicationByPNR(ctx, pnr, req.RejectionReason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(app, "Application rejected successfully"))
}

// Delete removes an application outright
// @Summary Delete an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse "Application deleted"
// @Failure 400 {object} dto.APIResponse "Approved application cannot be deleted"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Router /applications/{id} [delete]
func (c *ApplicationController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.applicationService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Application deleted successfully"))
}

// inScopeForApplication checks the caller may act on the application's hostel
func (c *ApplicationController) inScopeForApplication(ctx *gin.Context, applicationID int64) bool {
	app, err := c.applicationService.GetByID(ctx, applicationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return false
	}

	adminID, _ := middleware.SubjectID(ctx)
	if err := c.hostelScope.Validate(ctx, middleware.Role(ctx), adminID, app.HostelID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return false
	}
	return true
}

// pathID parses an int64 path parameter, answering 400 on failure
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
			WithField(name).
			WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
