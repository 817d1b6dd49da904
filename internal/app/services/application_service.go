package services

import (
	"context"
	"fmt"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/logger"
)

// ApplicationService handles the student side of the application lifecycle
type ApplicationService struct {
	studentStore     StudentStore
	hostelStore      HostelStore
	applicationStore ApplicationStore
}

// NewApplicationService creates a new application service instance
func NewApplicationService(studentStore StudentStore, hostelStore HostelStore, applicationStore ApplicationStore) *ApplicationService {
	return &ApplicationService{
		studentStore:     studentStore,
		hostelStore:      hostelStore,
		applicationStore: applicationStore,
	}
}

// Submit files a new application for the student. A student holds at most
// one application; a rejected, cancelled or disallocated one has to be
// deleted by staff before a fresh submission.
func (s *ApplicationService) Submit(ctx context.Context, studentID int64, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.IsBlacklisted {
		return nil, apperrors.ErrStudentBlacklisted
	}

	existing, err := s.applicationStore.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking application: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateApplication
	}

	hostel, err := s.hostelStore.GetByID(ctx, req.HostelID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}
	if hostel == nil || !hostel.IsActive {
		// Disabled hostels are hidden from applicants
		return nil, apperrors.ErrHostelNotFound
	}

	app := &models.Application{
		StudentID:        studentID,
		HostelID:         req.HostelID,
		StudentName:      student.Name,
		StudentPNR:       student.PNR,
		StudentYear:      student.Year,
		Branch:           req.Branch,
		Caste:            req.Caste,
		DateOfBirth:      req.DateOfBirth,
		AadharCard:       req.AadharCard,
		AdmissionReceipt: req.AdmissionReceipt,
		Status:           models.StatusPending,
	}

	if err := s.applicationStore.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("error creating application: %w", err)
	}

	if err := s.studentStore.SetApplicationStatus(ctx, studentID, models.StatusPending); err != nil {
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Student status mirror not updated after submission")
	}

	logger.Info().Int64("applicationId", app.ID).Int64("studentId", studentID).Msg("Application submitted")
	return app, nil
}

// GetByID retrieves a single application
func (s *ApplicationService) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	app, err := s.applicationStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	if app == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	return app, nil
}

// GetOwn retrieves the calling student's application
func (s *ApplicationService) GetOwn(ctx context.Context, studentID int64) (*models.Application, error) {
	app, err := s.applicationStore.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	if app == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	return app, nil
}

// List retrieves applications filtered by status, year and hostel. A zero
// hostelID means all hostels.
func (s *ApplicationService) List(ctx context.Context, status, year string, hostelID int64) ([]*models.Application, error) {
	if status != "" && !models.IsValidProcessedStatus(models.ApplicationStatus(status)) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid application status filter")
	}

	apps, err := s.applicationStore.GetAll(ctx, status, year, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	return apps, nil
}

// Cancel lets a student withdraw their own pending application
func (s *ApplicationService) Cancel(ctx context.Context, studentID int64) (*models.Application, error) {
	app, err := s.applicationStore.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	if app == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	if app.Status != models.StatusPending {
		return nil, apperrors.ErrAlreadyProcessed
	}

	if err := s.applicationStore.SetStatus(ctx, app.ID, models.StatusCancelled); err != nil {
		return nil, fmt.Errorf("error cancelling application: %w", err)
	}
	app.Status = models.StatusCancelled

	if err := s.studentStore.SetApplicationStatus(ctx, studentID, models.StatusCancelled); err != nil {
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Student status mirror not updated after cancellation")
	}

	logger.Info().Int64("applicationId", app.ID).Msg("Application cancelled")
	return app, nil
}

// Delete removes an application outright. Approved applications cannot be
// deleted while the student still holds the room.
func (s *ApplicationService) Delete(ctx context.Context, id int64) error {
	app, err := s.applicationStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving application: %w", err)
	}
	if app == nil {
		return apperrors.ErrApplicationNotFound
	}
	if app.Status == models.StatusApproved {
		return apperrors.ErrApplicationApproved
	}

	if err := s.applicationStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}

	if err := s.studentStore.SetApplicationStatus(ctx, app.StudentID, models.StatusNotApplied); err != nil {
		logger.Error().Err(err).Int64("studentId", app.StudentID).Msg("Student status mirror not reset after deletion")
	}

	logger.Info().Int64("applicationId", id).Msg("Application deleted")
	return nil
}
