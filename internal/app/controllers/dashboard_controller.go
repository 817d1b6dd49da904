package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/services"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/middleware"
)

// DashboardController serves the staff dashboards
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetOverview returns the headline counts
// @Summary Get dashboard overview
// @Description Returns the headline counts, served from cache unless refresh=true
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} dto.APIResponse{data=dto.DashboardOverview} "Overview"
// @Router /dashboard [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	refresh := ctx.Query("refresh") == "true"

	overview, cached, err := c.dashboardService.GetOverview(ctx, refresh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Dashboard retrieved successfully",
		Data:      overview,
		Cached:    cached,
		Timestamp: time.Now(),
	})
}

// GetData returns the full admin, student and hostel listings
// @Summary Get dashboard data
// @Description Returns the full admin, student and hostel listings with totals, served from cache unless refresh=true
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} dto.APIResponse{data=dto.DashboardData} "Dashboard data"
// @Router /dashboard/data [get]
func (c *DashboardController) GetData(ctx *gin.Context) {
	refresh := ctx.Query("refresh") == "true"

	data, cached, err := c.dashboardService.GetData(ctx, refresh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Dashboard data retrieved successfully",
		Data:      data,
		Cached:    cached,
		Timestamp: time.Now(),
	})
}

// GetDetailed returns the full dashboard with per-hostel breakdowns
// @Summary Get detailed dashboard
// @Description Returns per-hostel and per-status breakdowns, served from cache unless refresh=true
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} dto.APIResponse{data=dto.DetailedDashboard} "Detailed dashboard"
// @Router /dashboard/detailed [get]
func (c *DashboardController) GetDetailed(ctx *gin.Context) {
	refresh := ctx.Query("refresh") == "true"

	dashboard, cached, err := c.dashboardService.GetDetailed(ctx, refresh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Dashboard retrieved successfully",
		Data:      dashboard,
		Cached:    cached,
		Timestamp: time.Now(),
	})
}
