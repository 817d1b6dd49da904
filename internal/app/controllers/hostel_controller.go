package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/auth"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/services"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/middleware"
)

// HostelController handles hostel and room inventory endpoints
type HostelController struct {
	hostelService *services.HostelService
	hostelScope   *appauth.HostelScope
}

// NewHostelController creates a new HostelController
func NewHostelController(hostelService *services.HostelService, hostelScope *appauth.HostelScope) *HostelController {
	return &HostelController{
		hostelService: hostelService,
		hostelScope:   hostelScope,
	}
}

// Create registers a new hostel
// @Summary Create a hostel
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHostelRequest true "Hostel information"
// @Success 201 {object} dto.APIResponse{data=models.Hostel} "Hostel created"
// @Failure 400 {object} dto.APIResponse "Invalid data or duplicate name"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /hostels [post]
func (c *HostelController) Create(ctx *gin.Context) {
	var req dto.CreateHostelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	hostel, err := c.hostelService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(hostel, "Hostel created successfully"))
}

// List returns the hostel catalog
// @Summary List hostels
// @Tags hostels
// @Produce json
// @Param includeInactive query bool false "Include disabled hostels"
// @Success 200 {object} dto.APIResponse{data=dto.HostelListResponse} "Hostels"
// @Router /hostels [get]
func (c *HostelController) List(ctx *gin.Context) {
	includeInactive := ctx.Query("includeInactive") == "true"
	hostels, err := c.hostelService.List(ctx, includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HostelListResponse{
		Hostels: hostels,
		Total:   len(hostels),
	}, "Hostels retrieved successfully"))
}

// GetByID returns a single hostel
// @Summary Get hostel by ID
// @Tags hostels
// @Produce json
// @Param id path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=models.Hostel} "Hostel"
// @Failure 404 {object} dto.APIResponse "Hostel not found"
// @Router /hostels/{id} [get]
func (c *HostelController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	hostel, err := c.hostelService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hostel, "Hostel retrieved successfully"))
}

// Update edits a hostel
// @Summary Update a hostel
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Param request body dto.UpdateHostelRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Hostel} "Hostel updated"
// @Failure 400 {object} dto.APIResponse "Invalid data or duplicate name"
// @Failure 404 {object} dto.APIResponse "Hostel not found"
// @Router /hostels/{id} [put]
func (c *HostelController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateHostelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	hostel, err := c.hostelService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hostel, "Hostel updated successfully"))
}

// ChangeAdmin moves the hostel under a different admin
// @Summary Change hostel admin
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Param request body dto.ChangeHostelAdminRequest true "New admin"
// @Success 200 {object} dto.APIResponse{data=models.Hostel} "Admin changed"
// @Failure 400 {object} dto.APIResponse "Target is not an admin"
// @Failure 404 {object} dto.APIResponse "Hostel or admin not found"
// @Router /hostels/{id}/admin [put]
func (c *HostelController) ChangeAdmin(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChangeHostelAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	hostel, err := c.hostelService.ChangeAdmin(ctx, id, req.AdminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hostel, "Hostel admin changed successfully"))
}

// Delete removes a hostel with its rooms and applications
// @Summary Delete a hostel
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse "Hostel deleted"
// @Failure 400 {object} dto.APIResponse "Hostel still houses students"
// @Failure 404 {object} dto.APIResponse "Hostel not found"
// @Router /hostels/{id} [delete]
func (c *HostelController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.hostelService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Hostel deleted successfully"))
}

// Disable hides a hostel from the catalog and blocks new applications
// @Summary Disable a hostel
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=models.Hostel} "Hostel disabled"
// @Failure 404 {object} dto.APIResponse "Hostel not found"
// @Router /hostels/{id}/disable [patch]
func (c *HostelController) Disable(ctx *gin.Context) {
	c.setActive(ctx, false, "Hostel disabled successfully")
}

// Enable returns a disabled hostel to the catalog
// @Summary Enable a hostel
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=models.Hostel} "Hostel enabled"
// @Failure 404 {object} dto.APIResponse "Hostel not found"
// @Router /hostels/{id}/enable [patch]
func (c *HostelController) Enable(ctx *gin.Context) {
	c.setActive(ctx, true, "Hostel enabled successfully")
}

func (c *HostelController) setActive(ctx *gin.Context, active bool, message string) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	hostel, err := c.hostelService.SetActive(ctx, id, active)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hostel, message))
}

// AddRoom creates a room inside a hostel
// @Summary Add a room to a hostel
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Param request body dto.CreateRoomRequest true "Room information"
// @Success 201 {object} dto.APIResponse{data=models.Room} "Room created"
// @Failure 400 {object} dto.APIResponse "Duplicate room number on this floor"
// @Failure 403 {object} dto.APIResponse "Hostel not managed by caller"
// @Failure 404 {object} dto.APIResponse "Hostel not found"
// @Router /hostels/{id}/rooms [post]
func (c *HostelController) AddRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if !c.inScope(ctx, id) {
		return
	}

	room, err := c.hostelService.AddRoom(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(room, "Room created successfully"))
}

// ListRooms returns a hostel's rooms with occupants
// @Summary List rooms of a hostel
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=dto.RoomListResponse} "Rooms"
// @Failure 404 {object} dto.APIResponse "Hostel not found"
// @Router /hostels/{id}/rooms [get]
func (c *HostelController) ListRooms(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	rooms, err := c.hostelService.ListRooms(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RoomListResponse{
		Rooms: rooms,
		Total: len(rooms),
	}, "Rooms retrieved successfully"))
}

// GetInventory returns the seat level inventory view of a hostel
// @Summary Get hostel inventory
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=dto.HostelInventoryResponse} "Inventory"
// @Failure 404 {object} dto.APIResponse "Hostel not found"
// @Router /hostels/{id}/inventory [get]
func (c *HostelController) GetInventory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	inv, err := c.hostelService.GetInventory(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(inv, "Inventory retrieved successfully"))
}

// GetRoom returns a single room with its occupants
// @Summary Get room by ID
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room"
// @Failure 404 {object} dto.APIResponse "Room not found"
// @Router /rooms/{id} [get]
func (c *HostelController) GetRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	room, err := c.hostelService.GetRoom(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(room, "Room retrieved successfully"))
}

// UpdateRoom edits a room's capacity or notes
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room updated"
// @Failure 400 {object} dto.APIResponse "Capacity below current occupancy"
// @Failure 404 {object} dto.APIResponse "Room not found"
// @Router /rooms/{id} [put]
func (c *HostelController) UpdateRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	room, err := c.hostelService.UpdateRoom(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(room, "Room updated successfully"))
}

// DeleteRoom removes an empty room
// @Summary Delete a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse "Room deleted"
// @Failure 400 {object} dto.APIResponse "Room still houses students"
// @Failure 404 {object} dto.APIResponse "Room not found"
// @Router /rooms/{id} [delete]
func (c *HostelController) DeleteRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.hostelService.DeleteRoom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Room deleted successfully"))
}

func (c *HostelController) inScope(ctx *gin.Context, hostelID int64) bool {
	adminID, _ := middleware.SubjectID(ctx)
	if err := c.hostelScope.Validate(ctx, middleware.Role(ctx), adminID, hostelID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return false
	}
	return true
}
