package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
)

func TestPermissionTable(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		op      Operation
		allowed bool
	}{
		{"student submits application", models.RoleStudent, OpSubmitApplication, true},
		{"student cannot process applications", models.RoleStudent, OpProcessApplication, false},
		{"student cannot list students", models.RoleStudent, OpListStudents, false},
		{"student views hostels", models.RoleStudent, OpViewHostels, true},
		{"admin processes applications", models.RoleAdmin, OpProcessApplication, true},
		{"admin changes room status", models.RoleAdmin, OpChangeRoomStatus, true},
		{"admin cannot assign rooms", models.RoleAdmin, OpAssignRoom, false},
		{"admin cannot change rooms", models.RoleAdmin, OpChangeRoom, false},
		{"admin cannot reassign rooms", models.RoleAdmin, OpReassignRoom, false},
		{"admin cannot evict students", models.RoleAdmin, OpRemoveFromRoom, false},
		{"admin cannot reject by pnr", models.RoleAdmin, OpRejectByPNR, false},
		{"admin cannot manage hostels", models.RoleAdmin, OpManageHostel, false},
		{"admin cannot manage students", models.RoleAdmin, OpManageStudents, false},
		{"admin cannot delete applications", models.RoleAdmin, OpDeleteApplication, false},
		{"admin cannot manage admins", models.RoleAdmin, OpManageAdmins, false},
		{"superadmin manages hostels", models.RoleSuperadmin, OpManageHostel, true},
		{"superadmin manages students", models.RoleSuperadmin, OpManageStudents, true},
		{"superadmin manages admins", models.RoleSuperadmin, OpManageAdmins, true},
		{"superadmin assigns rooms", models.RoleSuperadmin, OpAssignRoom, true},
		{"superadmin rejects by pnr", models.RoleSuperadmin, OpRejectByPNR, true},
		{"superadmin cannot submit applications", models.RoleSuperadmin, OpSubmitApplication, false},
		{"unknown operation denies everyone", models.RoleSuperadmin, Operation("nonsense"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, Allowed(tt.role, tt.op))
		})
	}
}

func TestRolesFor(t *testing.T) {
	staff := RolesFor(OpViewDashboard)
	assert.ElementsMatch(t, []models.Role{models.RoleAdmin, models.RoleSuperadmin}, staff)
	assert.Empty(t, RolesFor(Operation("nonsense")))
}

type stubHostelStore struct {
	hostels map[int64]*models.Hostel
}

func (s *stubHostelStore) GetByID(_ context.Context, id int64) (*models.Hostel, error) {
	return s.hostels[id], nil
}

func TestHostelScopeValidate(t *testing.T) {
	managed := int64(7)
	store := &stubHostelStore{hostels: map[int64]*models.Hostel{
		1: {ID: 1, Name: "Managed", AdminID: &managed},
		2: {ID: 2, Name: "Unassigned"},
	}}
	scope := NewHostelScope(store)

	// Superadmins pass regardless of assignment
	require.NoError(t, scope.Validate(context.Background(), models.RoleSuperadmin, 99, 1))

	// Admins pass only on their own hostel
	require.NoError(t, scope.Validate(context.Background(), models.RoleAdmin, 7, 1))
	assert.ErrorIs(t, scope.Validate(context.Background(), models.RoleAdmin, 8, 1), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, scope.Validate(context.Background(), models.RoleAdmin, 7, 2), apperrors.ErrPermissionDenied)

	// Unknown hostel and non-staff roles
	assert.ErrorIs(t, scope.Validate(context.Background(), models.RoleAdmin, 7, 42), apperrors.ErrHostelNotFound)
	assert.ErrorIs(t, scope.Validate(context.Background(), models.RoleStudent, 7, 1), apperrors.ErrPermissionDenied)
}
