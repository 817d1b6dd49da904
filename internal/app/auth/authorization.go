package auth

import (
	"context"
	"fmt"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
)

// Operation names the protected actions of the API. Permissions are an
// explicit table from operation to the roles allowed to perform it; there is
// no implicit bypass for any role.
type Operation string

const (
	OpSubmitApplication  Operation = "application.submit"
	OpCancelApplication  Operation = "application.cancel"
	OpViewOwnApplication Operation = "application.view_own"
	OpListApplications   Operation = "application.list"
	OpProcessApplication Operation = "application.process"
	OpRejectByPNR        Operation = "application.reject_pnr"
	OpDeleteApplication  Operation = "application.delete"

	OpAssignRoom       Operation = "allocation.assign"
	OpChangeRoom       Operation = "allocation.change"
	OpReassignRoom     Operation = "allocation.reassign"
	OpRemoveFromRoom   Operation = "allocation.remove"
	OpChangeRoomStatus Operation = "allocation.room_status"

	OpViewHostels  Operation = "hostel.view"
	OpManageHostel Operation = "hostel.manage"
	OpManageRooms  Operation = "hostel.rooms"
	OpViewRooms    Operation = "hostel.view_rooms"

	OpListStudents   Operation = "student.list"
	OpManageStudents Operation = "student.manage"

	OpManageAdmins  Operation = "admin.manage"
	OpViewDashboard Operation = "dashboard.view"
)

var permissions = map[Operation][]models.Role{
	OpSubmitApplication:  {models.RoleStudent},
	OpCancelApplication:  {models.RoleStudent},
	OpViewOwnApplication: {models.RoleStudent},
	OpListApplications:   {models.RoleAdmin, models.RoleSuperadmin},
	OpProcessApplication: {models.RoleAdmin, models.RoleSuperadmin},
	OpRejectByPNR:        {models.RoleSuperadmin},
	OpDeleteApplication:  {models.RoleSuperadmin},

	// Room placement cuts across hostels, so it stays with the superadmin;
	// hostel admins only process applications and manage their own rooms.
	OpAssignRoom:       {models.RoleSuperadmin},
	OpChangeRoom:       {models.RoleSuperadmin},
	OpReassignRoom:     {models.RoleSuperadmin},
	OpRemoveFromRoom:   {models.RoleSuperadmin},
	OpChangeRoomStatus: {models.RoleAdmin, models.RoleSuperadmin},

	OpViewHostels:  {models.RoleStudent, models.RoleAdmin, models.RoleSuperadmin},
	OpManageHostel: {models.RoleSuperadmin},
	OpManageRooms:  {models.RoleAdmin, models.RoleSuperadmin},
	OpViewRooms:    {models.RoleAdmin, models.RoleSuperadmin},

	OpListStudents:   {models.RoleAdmin, models.RoleSuperadmin},
	OpManageStudents: {models.RoleSuperadmin},

	OpManageAdmins:  {models.RoleSuperadmin},
	OpViewDashboard: {models.RoleAdmin, models.RoleSuperadmin},
}

// Allowed reports whether the role may perform the operation
func Allowed(role models.Role, op Operation) bool {
	for _, r := range permissions[op] {
		if r == role {
			return true
		}
	}
	return false
}

// RolesFor returns the roles an operation is open to, for route wiring
func RolesFor(op Operation) []models.Role {
	return permissions[op]
}

// HostelScope resolves which hostels an admin may operate on. Admins are
// scoped to the hostels they manage; superadmins see all.
type HostelScope struct {
	hostelStore HostelStore
}

// HostelStore is the minimal lookup surface the scope check needs
type HostelStore interface {
	GetByID(ctx context.Context, id int64) (*models.Hostel, error)
}

// NewHostelScope creates a scope checker over the hostel store
func NewHostelScope(hostelStore HostelStore) *HostelScope {
	return &HostelScope{hostelStore: hostelStore}
}

// Validate returns nil when the caller may act on the hostel
func (s *HostelScope) Validate(ctx context.Context, role models.Role, adminID, hostelID int64) error {
	if role == models.RoleSuperadmin {
		return nil
	}
	if role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	hostel, err := s.hostelStore.GetByID(ctx, hostelID)
	if err != nil {
		return fmt.Errorf("error retrieving hostel: %w", err)
	}
	if hostel == nil {
		return apperrors.ErrHostelNotFound
	}
	if hostel.AdminID == nil || *hostel.AdminID != adminID {
		return apperrors.ErrPermissionDenied
	}

	return nil
}
