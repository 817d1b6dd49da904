package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/auth"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/services"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/middleware"
)

// AllocationController exposes the room allocation operations
type AllocationController struct {
	allocationService *services.AllocationService
	hostelScope       *appauth.HostelScope
}

// NewAllocationController creates a new AllocationController
func NewAllocationController(allocationService *services.AllocationService, hostelScope *appauth.HostelScope) *AllocationController {
	return &AllocationController{
		allocationService: allocationService,
		hostelScope:       hostelScope,
	}
}

// AssignRoom houses a student directly in a room
// @Summary Assign a room to a student
// @Description Places a student in a room by id, bypassing the application flow
// @Tags allocation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignRoomRequest true "Assignment"
// @Success 200 {object} dto.APIResponse{data=dto.AllocationResult} "Room assigned"
// @Failure 400 {object} dto.APIResponse "Room full, blacklisted student or mismatch"
// @Failure 403 {object} dto.APIResponse "Hostel not managed by caller"
// @Failure 404 {object} dto.APIResponse "Student or room not found"
// @Router /allocation/assign [post]
func (c *AllocationController) AssignRoom(ctx *gin.Context) {
	var req dto.AssignRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if !c.inScope(ctx, req.HostelID) {
		return
	}

	result, err := c.allocationService.AssignRoom(ctx, req.StudentID, req.HostelID, req.RoomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Room assigned successfully"))
}

// ChangeRoom moves a housed student to another room
// @Summary Change a student's room
// @Description Moves a student with an approved application into another room
// @Tags allocation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangeRoomRequest true "Target room"
// @Success 200 {object} dto.APIResponse{data=dto.AllocationResult} "Room changed"
// @Failure 400 {object} dto.APIResponse "Room full, same room or no approved application"
// @Failure 403 {object} dto.APIResponse "Hostel not managed by caller"
// @Failure 404 {object} dto.APIResponse "Student or room not found"
// @Router /allocation/change [put]
func (c *AllocationController) ChangeRoom(ctx *gin.Context) {
	var req dto.ChangeRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if !c.inScope(ctx, req.HostelID) {
		return
	}

	result, err := c.allocationService.ChangeRoom(ctx, req.StudentID, req.HostelID, req.RoomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Room changed successfully"))
}

// ReassignRoom re-houses a student without an application precondition
// @Summary Reassign a student's room
// @Description Administrative correction that re-houses a student regardless of application state
// @Tags allocation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ReassignRoomRequest true "Target room and remark"
// @Success 200 {object} dto.APIResponse{data=dto.AllocationResult} "Room reassigned"
// @Failure 400 {object} dto.APIResponse "Room full or blacklisted student"
// @Failure 403 {object} dto.APIResponse "Hostel not managed by caller"
// @Failure 404 {object} dto.APIResponse "Student or room not found"
// @Router /allocation/reassign [put]
func (c *AllocationController) ReassignRoom(ctx *gin.Context) {
	var req dto.ReassignRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if !c.inScope(ctx, req.HostelID) {
		return
	}

	result, err := c.allocationService.ReassignRoom(ctx, req.StudentID, req.HostelID, req.RoomID, req.Remark)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Room reassigned successfully"))
}

// RemoveFromRoom evicts a student from their current room
// @Summary Remove a student from their room
// @Description Frees the seat and disallocates the student and their application
// @Tags allocation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RemoveFromRoomRequest true "Student and remark"
// @Success 200 {object} dto.APIResponse{data=dto.AllocationResult} "Student removed"
// @Failure 400 {object} dto.APIResponse "Student has no assigned room"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /allocation/remove [put]
func (c *AllocationController) RemoveFromRoom(ctx *gin.Context) {
	var req dto.RemoveFromRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.allocationService.RemoveFromRoom(ctx, req.StudentID, req.Remark)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Student removed from room successfully"))
}

// ChangeRoomStatus sets a room's operational status
// @Summary Change a room's status
// @Description Marks a room empty, filled, damaged or under maintenance
// @Tags allocation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body dto.ChangeRoomStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Status changed"
// @Failure 400 {object} dto.APIResponse "Invalid status or room not at capacity"
// @Failure 404 {object} dto.APIResponse "Room not found"
// @Router /rooms/{id}/status [put]
func (c *AllocationController) ChangeRoomStatus(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoomStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	room, err := c.allocationService.ChangeRoomStatus(ctx, id, models.RoomStatus(req.Status), req.Notes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(room, "Room status changed successfully"))
}

func (c *AllocationController) inScope(ctx *gin.Context, hostelID int64) bool {
	adminID, _ := middleware.SubjectID(ctx)
	if err := c.hostelScope.Validate(ctx, middleware.Role(ctx), adminID, hostelID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return false
	}
	return true
}
