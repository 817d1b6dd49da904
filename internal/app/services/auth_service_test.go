package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/auth"
)

const testPasskey = "letmein-passkey"

func newAuthFixture() (*AuthService, *fakeStudentStore, *fakeAdminStore) {
	students := newFakeStudentStore()
	admins := newFakeAdminStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	return NewAuthService(students, admins, jwtService, testPasskey), students, admins
}

func registerStudentRequest() *dto.RegisterStudentRequest {
	return &dto.RegisterStudentRequest{
		Name:     "Asha Patil",
		Email:    "asha@college.edu",
		PNR:      "PNR2024001",
		Password: "s3cretpass",
		Gender:   "Female",
		Year:     "2nd",
		Phone:    "9876543210",
	}
}

func registerAdminRequest() *dto.RegisterAdminRequest {
	return &dto.RegisterAdminRequest{
		Name:            "R. Kulkarni",
		Email:           "warden@college.edu",
		AdminID:         "WARDEN01",
		Password:        "w4rdenpass",
		ConfirmPassword: "w4rdenpass",
	}
}

func TestRegisterAndLoginStudent(t *testing.T) {
	svc, _, _ := newAuthFixture()

	student, tokens, err := svc.RegisterStudent(context.Background(), registerStudentRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.Token)
	assert.Equal(t, models.StatusNotApplied, student.ApplicationStatus)
	assert.NotEqual(t, "s3cretpass", student.Password, "password must be stored hashed")

	// Login by email
	_, byEmail, err := svc.LoginStudent(context.Background(), "asha@college.edu", "s3cretpass")
	require.NoError(t, err)
	assert.NotEmpty(t, byEmail.Token)

	// Login by PNR
	_, byPNR, err := svc.LoginStudent(context.Background(), "PNR2024001", "s3cretpass")
	require.NoError(t, err)
	assert.NotEmpty(t, byPNR.Token)
}

func TestRegisterStudentDuplicate(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, _, err := svc.RegisterStudent(context.Background(), registerStudentRequest())
	require.NoError(t, err)

	_, _, err = svc.RegisterStudent(context.Background(), registerStudentRequest())
	assert.ErrorIs(t, err, apperrors.ErrStudentExists)
}

func TestRegisterStudentMalformedPNR(t *testing.T) {
	svc, students, _ := newAuthFixture()

	req := registerStudentRequest()
	req.PNR = "pnr-1"
	_, _, err := svc.RegisterStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, students.students)
}

func TestLoginStudentBadPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, _, err := svc.RegisterStudent(context.Background(), registerStudentRequest())
	require.NoError(t, err)

	_, _, err = svc.LoginStudent(context.Background(), "asha@college.edu", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.LoginStudent(context.Background(), "nobody@college.edu", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterAdminAndLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()

	admin, err := svc.RegisterAdmin(context.Background(), registerAdminRequest())
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Staff log in with either email or staff code
	_, tokens, err := svc.LoginAdmin(context.Background(), "WARDEN01", "w4rdenpass")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.Token)

	_, _, err = svc.LoginAdmin(context.Background(), "warden@college.edu", "w4rdenpass")
	assert.NoError(t, err)
}

func TestRegisterAdminDuplicate(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.RegisterAdmin(context.Background(), registerAdminRequest())
	require.NoError(t, err)

	_, err = svc.RegisterAdmin(context.Background(), registerAdminRequest())
	assert.ErrorIs(t, err, apperrors.ErrAdminExists)
}

func TestRegisterSuperadminPasskey(t *testing.T) {
	svc, _, _ := newAuthFixture()

	req := &dto.RegisterSuperadminRequest{RegisterAdminRequest: *registerAdminRequest(), Passkey: "wrong"}
	_, err := svc.RegisterSuperadmin(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPasskey)

	req.Passkey = testPasskey
	admin, err := svc.RegisterSuperadmin(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperadmin, admin.Role)
}

func TestLoginAdminDisabledAccount(t *testing.T) {
	svc, _, admins := newAuthFixture()

	admin, err := svc.RegisterAdmin(context.Background(), registerAdminRequest())
	require.NoError(t, err)

	stored := admins.admins[admin.ID]
	stored.IsActive = false

	_, _, err = svc.LoginAdmin(context.Background(), "WARDEN01", "w4rdenpass")
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
