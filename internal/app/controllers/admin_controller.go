package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/services"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/middleware"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
)

// AdminController handles staff account management endpoints
type AdminController struct {
	adminService  *services.AdminService
	hostelService *services.HostelService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, hostelService *services.HostelService) *AdminController {
	return &AdminController{
		adminService:  adminService,
		hostelService: hostelService,
	}
}

// List returns staff accounts, optionally filtered by role
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Success 200 {object} dto.APIResponse{data=dto.AdminListResponse} "Admins"
// @Router /admins [get]
func (c *AdminController) List(ctx *gin.Context) {
	admins, err := c.adminService.List(ctx, ctx.Query("role"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AdminListResponse{
		Admins: admins,
		Total:  len(admins),
	}, "Admins retrieved successfully"))
}

// GetByID returns a staff account with its managed hostels
// @Summary Get admin by ID
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{id} [get]
func (c *AdminController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	admin, err := c.adminService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin, "Admin retrieved successfully"))
}

// GetOwnHostels returns the hostels managed by the calling admin
// @Summary List own managed hostels
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.HostelListResponse} "Hostels"
// @Router /admins/me/hostels [get]
func (c *AdminController) GetOwnHostels(ctx *gin.Context) {
	adminID, ok := middleware.SubjectID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	hostels, err := c.hostelService.ListManagedBy(ctx, adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HostelListResponse{
		Hostels: hostels,
		Total:   len(hostels),
	}, "Hostels retrieved successfully"))
}

// Deactivate disables an admin account
// @Summary Deactivate an admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin deactivated"
// @Failure 400 {object} dto.APIResponse "Superadmins cannot be deactivated"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{id}/deactivate [put]
func (c *AdminController) Deactivate(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	admin, err := c.adminService.Deactivate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin, "Admin deactivated successfully"))
}

// Activate re-enables a deactivated admin account
// @Summary Activate an admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin activated"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{id}/activate [put]
func (c *AdminController) Activate(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	admin, err := c.adminService.Activate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin, "Admin activated successfully"))
}

// Delete removes an admin account
// @Summary Delete an admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse "Admin deleted"
// @Failure 400 {object} dto.APIResponse "Admin still manages hostels"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{id} [delete]
func (c *AdminController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Admin deleted successfully"))
}
