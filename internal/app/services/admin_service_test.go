package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
)

func newAdminFixture() (*AdminService, *fakeAdminStore, *fakeHostelStore) {
	admins := newFakeAdminStore()
	hostels := newFakeHostelStore(newFakeRoomStore())
	return NewAdminService(admins, hostels), admins, hostels
}

func TestGetAdminAttachesHostels(t *testing.T) {
	svc, admins, hostels := newAdminFixture()
	admin := admins.add(&models.Admin{Name: "R. Kulkarni", AdminID: "WARDEN01", Role: models.RoleAdmin})
	hostels.add(&models.Hostel{Name: "Sunrise Hostel", AdminID: &admin.ID})

	loaded, err := svc.GetByID(context.Background(), admin.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Hostels, 1)
	assert.Equal(t, "Sunrise Hostel", loaded.Hostels[0].Name)
}

func TestDeactivateAdmin(t *testing.T) {
	svc, admins, _ := newAdminFixture()
	admin := admins.add(&models.Admin{Name: "R. Kulkarni", AdminID: "WARDEN01", Role: models.RoleAdmin})

	deactivated, err := svc.Deactivate(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	stored, _ := admins.GetByID(context.Background(), admin.ID)
	assert.False(t, stored.IsActive)
}

func TestDeactivateSuperadminBlocked(t *testing.T) {
	svc, admins, _ := newAdminFixture()
	super := admins.add(&models.Admin{Name: "Root", AdminID: "SUPER01", Role: models.RoleSuperadmin})

	_, err := svc.Deactivate(context.Background(), super.ID)
	assert.ErrorIs(t, err, apperrors.ErrAdminImmutable)

	err = svc.Delete(context.Background(), super.ID)
	assert.ErrorIs(t, err, apperrors.ErrAdminImmutable)
}

func TestDeleteAdminManagingHostels(t *testing.T) {
	svc, admins, hostels := newAdminFixture()
	admin := admins.add(&models.Admin{Name: "R. Kulkarni", AdminID: "WARDEN01", Role: models.RoleAdmin})
	hostel := hostels.add(&models.Hostel{Name: "Sunrise Hostel", AdminID: &admin.ID})

	err := svc.Delete(context.Background(), admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrAdminHasHostel)

	// Reassignment frees the account for deletion
	_ = hostels.SetAdmin(context.Background(), hostel.ID, nil)
	assert.NoError(t, svc.Delete(context.Background(), admin.ID))
}

func TestListAdminsByRole(t *testing.T) {
	svc, admins, _ := newAdminFixture()
	admins.add(&models.Admin{Name: "R. Kulkarni", AdminID: "WARDEN01", Role: models.RoleAdmin})
	admins.add(&models.Admin{Name: "Root", AdminID: "SUPER01", Role: models.RoleSuperadmin})

	onlyAdmins, err := svc.List(context.Background(), string(models.RoleAdmin))
	require.NoError(t, err)
	require.Len(t, onlyAdmins, 1)
	assert.Equal(t, "WARDEN01", onlyAdmins[0].AdminID)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestActivateAdmin(t *testing.T) {
	svc, admins, _ := newAdminFixture()
	admin := admins.add(&models.Admin{Name: "R. Kulkarni", AdminID: "WARDEN01", Role: models.RoleAdmin})

	_, err := svc.Deactivate(context.Background(), admin.ID)
	require.NoError(t, err)

	activated, err := svc.Activate(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	stored, _ := admins.GetByID(context.Background(), admin.ID)
	assert.True(t, stored.IsActive)
}
