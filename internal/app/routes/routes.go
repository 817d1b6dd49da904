package routes

import (
	"github.com/gin-gonic/gin"
	appauth "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/auth"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/controllers"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/middleware"
)

// SetupRouter configures all application routes. Role gates mirror the
// permission table in the auth package.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	applicationController *controllers.ApplicationController,
	allocationController *controllers.AllocationController,
	hostelController *controllers.HostelController,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/student/register", authController.RegisterStudent)
		auth.POST("/student/login", authController.LoginStudent)
		auth.POST("/admin/login", authController.LoginAdmin)
		auth.POST("/superadmin/register", authController.RegisterSuperadmin)
	}

	// Hostel catalog is public so applicants can browse before registering
	v1.GET("/hostels", hostelController.List)
	v1.GET("/hostels/:id", hostelController.GetByID)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Admin registration is restricted to superadmins
	authenticated.POST("/auth/admin/register",
		authMiddleware.RolesRequired(appauth.RolesFor(appauth.OpManageAdmins)...),
		authController.RegisterAdmin)

	// Student self-service
	studentOnly := authenticated.Group("")
	studentOnly.Use(authMiddleware.RolesRequired(appauth.RolesFor(appauth.OpSubmitApplication)...))
	{
		studentOnly.GET("/students/me", studentController.GetProfile)
		studentOnly.PUT("/students/me", studentController.UpdateProfile)
		studentOnly.POST("/applications", applicationController.Submit)
		studentOnly.GET("/applications/me", applicationController.GetOwn)
		studentOnly.PUT("/applications/me/cancel", applicationController.Cancel)
	}

	// Staff application processing
	staff := authenticated.Group("")
	staff.Use(authMiddleware.RolesRequired(appauth.RolesFor(appauth.OpProcessApplication)...))
	{
		staff.GET("/applications", applicationController.List)
		staff.GET("/applications/:id", applicationController.GetByID)
		staff.PUT("/applications/:id/approve", applicationController.Approve)
		staff.PUT("/applications/:id/reject", applicationController.Reject)

		staff.POST("/hostels/:id/rooms", hostelController.AddRoom)
		staff.GET("/hostels/:id/rooms", hostelController.ListRooms)
		staff.GET("/hostels/:id/inventory", hostelController.GetInventory)
		staff.GET("/rooms/:id", hostelController.GetRoom)
		staff.PUT("/rooms/:id", hostelController.UpdateRoom)
		staff.DELETE("/rooms/:id", hostelController.DeleteRoom)
		staff.PUT("/rooms/:id/status", allocationController.ChangeRoomStatus)

		staff.GET("/students", studentController.List)
		staff.GET("/students/:id", studentController.GetByID)

		staff.GET("/admins/me/hostels", adminController.GetOwnHostels)

		staff.GET("/dashboard", dashboardController.GetOverview)
		staff.GET("/dashboard/data", dashboardController.GetData)
		staff.GET("/dashboard/detailed", dashboardController.GetDetailed)
	}

	// Superadmin-only management. Room placement lives here too since it can
	// cross hostel boundaries.
	superadmin := authenticated.Group("")
	superadmin.Use(authMiddleware.RolesRequired(appauth.RolesFor(appauth.OpManageAdmins)...))
	{
		superadmin.PUT("/applications/pnr/:pnr/reject", applicationController.RejectByPNR)

		superadmin.POST("/allocation/assign", allocationController.AssignRoom)
		superadmin.PUT("/allocation/change", allocationController.ChangeRoom)
		superadmin.PUT("/allocation/reassign", allocationController.ReassignRoom)
		superadmin.PUT("/allocation/remove", allocationController.RemoveFromRoom)

		superadmin.POST("/hostels", hostelController.Create)
		superadmin.PUT("/hostels/:id", hostelController.Update)
		superadmin.PUT("/hostels/:id/admin", hostelController.ChangeAdmin)
		superadmin.PATCH("/hostels/:id/disable", hostelController.Disable)
		superadmin.PATCH("/hostels/:id/enable", hostelController.Enable)
		superadmin.DELETE("/hostels/:id", hostelController.Delete)

		superadmin.PUT("/students/:id/blacklist", studentController.Blacklist)
		superadmin.PUT("/students/:id/unblacklist", studentController.Unblacklist)
		superadmin.DELETE("/students/:id", studentController.Delete)

		superadmin.DELETE("/applications/:id", applicationController.Delete)

		superadmin.GET("/admins", adminController.List)
		superadmin.GET("/admins/:id", adminController.GetByID)
		superadmin.PUT("/admins/:id/deactivate", adminController.Deactivate)
		superadmin.PUT("/admins/:id/activate", adminController.Activate)
		superadmin.DELETE("/admins/:id", adminController.Delete)
	}
}
