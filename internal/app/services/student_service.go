package services

import (
	"context"
	"fmt"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/logger"
)

// StudentService handles student profiles and the superadmin student
// management operations
type StudentService struct {
	studentStore StudentStore
	roomStore    RoomStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore, roomStore RoomStore) *StudentService {
	return &StudentService{
		studentStore: studentStore,
		roomStore:    roomStore,
	}
}

// GetByID retrieves a single student
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// List retrieves students filtered by application status and year
func (s *StudentService) List(ctx context.Context, status, year string) ([]*models.Student, error) {
	students, err := s.studentStore.GetAll(ctx, status, year)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateProfile applies the non-nil fields of the request to the student.
// Name and PNR changes are propagated to the denormalized occupant row.
func (s *StudentService) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	nameChanged := false
	if req.Name != nil && *req.Name != student.Name {
		student.Name = *req.Name
		nameChanged = true
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.ParentName != nil {
		student.ParentName = *req.ParentName
	}
	if req.ParentPhone != nil {
		student.ParentPhone = *req.ParentPhone
	}
	if req.Year != nil {
		student.Year = *req.Year
	}

	if err := s.studentStore.UpdateProfile(ctx, student); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	if nameChanged && student.AssignedRoomID != nil {
		if err := s.roomStore.UpdateOccupantDetails(ctx, student.ID, student.Name, student.PNR); err != nil {
			logger.Error().Err(err).Int64("studentId", student.ID).Msg("Occupant details not refreshed after profile update")
		}
	}

	return student, nil
}

// Blacklist flags a student. A housed student stays in their room; the flag
// only blocks future allocations.
func (s *StudentService) Blacklist(ctx context.Context, id int64, remarks string) (*models.Student, error) {
	return s.setBlacklist(ctx, id, true, remarks)
}

// Unblacklist clears the flag
func (s *StudentService) Unblacklist(ctx context.Context, id int64) (*models.Student, error) {
	return s.setBlacklist(ctx, id, false, "")
}

func (s *StudentService) setBlacklist(ctx context.Context, id int64, blacklisted bool, remarks string) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	if err := s.studentStore.SetBlacklisted(ctx, id, blacklisted, remarks); err != nil {
		return nil, fmt.Errorf("error updating blacklist flag: %w", err)
	}
	student.IsBlacklisted = blacklisted
	student.Remarks = remarks

	logger.Info().Int64("studentId", id).Bool("blacklisted", blacklisted).Msg("Student blacklist flag changed")
	return student, nil
}

// Delete removes a student account. Housed students have to be removed from
// their room first so the seat counters stay correct.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return apperrors.ErrStudentNotFound
	}
	if student.AssignedRoomID != nil {
		return apperrors.NewCustomError(apperrors.ErrConflict, "student still occupies a room")
	}

	if err := s.studentStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}
