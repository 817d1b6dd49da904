package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/cache"
)

type dashboardFixture struct {
	svc      *DashboardService
	students *fakeStudentStore
	admins   *fakeAdminStore
	rooms    *fakeRoomStore
	hostels  *fakeHostelStore
	apps     *fakeApplicationStore
	cache    cache.Cache
}

func newDashboardFixture() *dashboardFixture {
	students := newFakeStudentStore()
	admins := newFakeAdminStore()
	rooms := newFakeRoomStore()
	hostels := newFakeHostelStore(rooms)
	apps := newFakeApplicationStore()
	c := cache.NewMemoryCache()
	return &dashboardFixture{
		svc:      NewDashboardService(students, admins, hostels, rooms, apps, c, 5*time.Minute),
		students: students,
		admins:   admins,
		rooms:    rooms,
		hostels:  hostels,
		apps:     apps,
		cache:    c,
	}
}

func (f *dashboardFixture) seed() {
	hostel := f.hostels.add(&models.Hostel{Name: "Sunrise Hostel", Gender: models.GenderMale})
	f.rooms.add(&models.Room{HostelID: hostel.ID, RoomNumber: "101", Floor: "1", Capacity: 2, OccupiedSpaces: 2, Status: models.RoomFilled})
	f.rooms.add(&models.Room{HostelID: hostel.ID, RoomNumber: "102", Floor: "1", Capacity: 2, OccupiedSpaces: 1})
	f.rooms.add(&models.Room{HostelID: hostel.ID, RoomNumber: "103", Floor: "1", Capacity: 2, Status: models.RoomDamaged})

	roomID := int64(1)
	f.students.add(&models.Student{Name: "Asha", PNR: "PNR1", AssignedRoomID: &roomID})
	f.students.add(&models.Student{Name: "Ravi", PNR: "PNR2", IsBlacklisted: true})
	f.students.add(&models.Student{Name: "Meena", PNR: "PNR3"})

	f.apps.add(&models.Application{StudentID: 1, HostelID: hostel.ID, Status: models.StatusApproved})
	f.apps.add(&models.Application{StudentID: 3, HostelID: hostel.ID, Status: models.StatusPending})
}

func TestDashboardOverviewCounts(t *testing.T) {
	f := newDashboardFixture()
	f.seed()

	overview, cached, err := f.svc.GetOverview(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, cached)

	assert.Equal(t, 3, overview.TotalStudents)
	assert.Equal(t, 1, overview.HousedStudents)
	assert.Equal(t, 1, overview.TotalHostels)
	assert.Equal(t, 3, overview.TotalRooms)
	// Filled and damaged rooms cannot take students
	assert.Equal(t, 1, overview.AvailableRooms)
	assert.Equal(t, 1, overview.PendingApplications)
}

func TestDashboardOverviewServedFromCache(t *testing.T) {
	f := newDashboardFixture()
	f.seed()

	_, cached, err := f.svc.GetOverview(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, cached)

	// Counts change, but the cached payload is returned until invalidated
	f.students.add(&models.Student{Name: "New", PNR: "PNR4"})
	overview, cached, err := f.svc.GetOverview(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 3, overview.TotalStudents)

	// refresh=true bypasses the cache
	overview, cached, err = f.svc.GetOverview(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 4, overview.TotalStudents)
}

func TestDashboardInvalidation(t *testing.T) {
	f := newDashboardFixture()
	f.seed()

	_, _, err := f.svc.GetOverview(context.Background(), false)
	require.NoError(t, err)

	require.NoError(t, f.cache.Invalidate(context.Background(), "dashboard"))

	f.students.add(&models.Student{Name: "New", PNR: "PNR4"})
	overview, cached, err := f.svc.GetOverview(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 4, overview.TotalStudents)
}

func TestDashboardData(t *testing.T) {
	f := newDashboardFixture()
	f.seed()
	f.admins.add(&models.Admin{Name: "R. Kulkarni", AdminID: "WARDEN01", Role: models.RoleAdmin})

	data, cached, err := f.svc.GetData(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, cached)

	assert.Equal(t, 1, data.Totals.Admins)
	assert.Equal(t, 3, data.Totals.Students)
	assert.Equal(t, 1, data.Totals.Hostels)
	assert.Len(t, data.Admins, 1)
	assert.Len(t, data.Students, 3)
	assert.Len(t, data.Hostels, 1)

	// Second read comes from the cache until refresh=true
	_, cached, err = f.svc.GetData(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, cached)

	f.students.add(&models.Student{Name: "New", PNR: "PNR4"})
	data, cached, err = f.svc.GetData(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 4, data.Totals.Students)
}

func TestDetailedDashboard(t *testing.T) {
	f := newDashboardFixture()
	f.seed()

	dashboard, cached, err := f.svc.GetDetailed(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, cached)

	assert.Equal(t, 1, dashboard.Blacklisted)
	assert.Equal(t, 1, dashboard.Applications.Pending)
	assert.Equal(t, 1, dashboard.Applications.Approved)

	require.Len(t, dashboard.Hostels, 1)
	entry := dashboard.Hostels[0]
	assert.Equal(t, "Sunrise Hostel", entry.HostelName)
	assert.Equal(t, 3, entry.TotalRooms)
	assert.Equal(t, 6, entry.TotalSeats)
	assert.Equal(t, 3, entry.OccupiedSeats)
	assert.Equal(t, 1, entry.DamagedRooms)
	assert.Equal(t, 1, entry.AvailableRooms)

	_, cached, err = f.svc.GetDetailed(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, cached)
}
