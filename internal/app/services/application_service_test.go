package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
)

type applicationFixture struct {
	svc      *ApplicationService
	students *fakeStudentStore
	hostels  *fakeHostelStore
	apps     *fakeApplicationStore
}

func newApplicationFixture() *applicationFixture {
	students := newFakeStudentStore()
	rooms := newFakeRoomStore()
	hostels := newFakeHostelStore(rooms)
	apps := newFakeApplicationStore()
	return &applicationFixture{
		svc:      NewApplicationService(students, hostels, apps),
		students: students,
		hostels:  hostels,
		apps:     apps,
	}
}

func submitRequest(hostelID int64) *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		HostelID:         hostelID,
		Branch:           "Computer Engineering",
		Caste:            "General",
		DateOfBirth:      "2004-06-15",
		AadharCard:       "123412341234",
		AdmissionReceipt: "RCPT-2024-001",
	}
}

func TestSubmitApplication(t *testing.T) {
	f := newApplicationFixture()
	hostel := f.hostels.add(&models.Hostel{Name: "Sunrise Hostel"})
	student := f.students.add(&models.Student{Name: "Asha Patil", Email: "asha@college.edu", PNR: "PNR2024001", Year: "2nd"})

	app, err := f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, student.ID, app.StudentID)
	// Name, PNR and year are snapshotted at submission time
	assert.Equal(t, "Asha Patil", app.StudentName)
	assert.Equal(t, "PNR2024001", app.StudentPNR)
	assert.Equal(t, "2nd", app.StudentYear)

	stored, _ := f.students.GetByID(context.Background(), student.ID)
	assert.Equal(t, models.StatusPending, stored.ApplicationStatus)
}

func TestSubmitApplicationDuplicate(t *testing.T) {
	f := newApplicationFixture()
	hostel := f.hostels.add(&models.Hostel{Name: "Sunrise Hostel"})
	student := f.students.add(&models.Student{Name: "Asha Patil", PNR: "PNR2024002"})

	_, err := f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	require.NoError(t, err)

	_, err = f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
}

func TestSubmitApplicationRejectedStillBlocks(t *testing.T) {
	f := newApplicationFixture()
	hostel := f.hostels.add(&models.Hostel{Name: "Sunrise Hostel"})
	student := f.students.add(&models.Student{Name: "Asha Patil", PNR: "PNR2024003"})

	app, err := f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	require.NoError(t, err)
	_ = f.apps.Reject(context.Background(), app.ID, "incomplete documents")

	// A rejected application still occupies the one-per-student slot until
	// staff delete it
	_, err = f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
}

func TestSubmitApplicationBlacklisted(t *testing.T) {
	f := newApplicationFixture()
	hostel := f.hostels.add(&models.Hostel{Name: "Sunrise Hostel"})
	student := f.students.add(&models.Student{Name: "Asha Patil", PNR: "PNR2024004", IsBlacklisted: true})

	_, err := f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	assert.ErrorIs(t, err, apperrors.ErrStudentBlacklisted)
}

func TestSubmitApplicationUnknownHostel(t *testing.T) {
	f := newApplicationFixture()
	student := f.students.add(&models.Student{Name: "Asha Patil", PNR: "PNR2024005"})

	_, err := f.svc.Submit(context.Background(), student.ID, submitRequest(99))
	assert.ErrorIs(t, err, apperrors.ErrHostelNotFound)
}

func TestSubmitApplicationDisabledHostel(t *testing.T) {
	f := newApplicationFixture()
	hostel := f.hostels.add(&models.Hostel{Name: "Sunrise Hostel"})
	f.hostels.hostels[hostel.ID].IsActive = false
	student := f.students.add(&models.Student{Name: "Asha Patil", PNR: "PNR2024006"})

	// Disabled hostels look absent to applicants
	_, err := f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	assert.ErrorIs(t, err, apperrors.ErrHostelNotFound)
}

func TestCancelApplication(t *testing.T) {
	f := newApplicationFixture()
	hostel := f.hostels.add(&models.Hostel{Name: "Sunrise Hostel"})
	student := f.students.add(&models.Student{Name: "Asha Patil", PNR: "PNR2024006"})

	_, err := f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	stored, _ := f.students.GetByID(context.Background(), student.ID)
	assert.Equal(t, models.StatusCancelled, stored.ApplicationStatus)

	// A cancelled application cannot be cancelled again
	_, err = f.svc.Cancel(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyProcessed)
}

func TestListApplicationsInvalidStatusFilter(t *testing.T) {
	f := newApplicationFixture()

	_, err := f.svc.List(context.Background(), "SHORTLISTED", "", 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListApplicationsByHostel(t *testing.T) {
	f := newApplicationFixture()
	hostelA := f.hostels.add(&models.Hostel{Name: "Hostel A"})
	hostelB := f.hostels.add(&models.Hostel{Name: "Hostel B"})
	s1 := f.students.add(&models.Student{Name: "Asha", PNR: "PNR1"})
	s2 := f.students.add(&models.Student{Name: "Ravi", PNR: "PNR2"})

	_, err := f.svc.Submit(context.Background(), s1.ID, submitRequest(hostelA.ID))
	require.NoError(t, err)
	_, err = f.svc.Submit(context.Background(), s2.ID, submitRequest(hostelB.ID))
	require.NoError(t, err)

	apps, err := f.svc.List(context.Background(), "", "", hostelA.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, s1.ID, apps[0].StudentID)

	all, err := f.svc.List(context.Background(), "", "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteApplicationResetsStudent(t *testing.T) {
	f := newApplicationFixture()
	hostel := f.hostels.add(&models.Hostel{Name: "Sunrise Hostel"})
	student := f.students.add(&models.Student{Name: "Asha Patil", PNR: "PNR2024007"})

	app, err := f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	require.NoError(t, err)
	_ = f.apps.Reject(context.Background(), app.ID, "incomplete documents")

	require.NoError(t, f.svc.Delete(context.Background(), app.ID))

	stored, _ := f.students.GetByID(context.Background(), student.ID)
	assert.Equal(t, models.StatusNotApplied, stored.ApplicationStatus)

	// The slot is free again
	_, err = f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	assert.NoError(t, err)
}

func TestDeleteApprovedApplicationBlocked(t *testing.T) {
	f := newApplicationFixture()
	hostel := f.hostels.add(&models.Hostel{Name: "Sunrise Hostel"})
	student := f.students.add(&models.Student{Name: "Asha Patil", PNR: "PNR2024008"})

	app, err := f.svc.Submit(context.Background(), student.ID, submitRequest(hostel.ID))
	require.NoError(t, err)
	_ = f.apps.Approve(context.Background(), app.ID, "101", "1", app.AppliedOn)

	err = f.svc.Delete(context.Background(), app.ID)
	assert.ErrorIs(t, err, apperrors.ErrApplicationApproved)
}

func TestGetOwnApplicationNotFound(t *testing.T) {
	f := newApplicationFixture()
	student := f.students.add(&models.Student{Name: "Asha Patil", PNR: "PNR2024009"})

	_, err := f.svc.GetOwn(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
