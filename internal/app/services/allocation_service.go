package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/repositories"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/cache"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/logger"
)

// Default audit remarks written when staff do not supply one
const (
	defaultReassignRemark = "Student room reassigned by admin"
	defaultRemoveRemark   = "Student is removed from room by admin"
)

// AllocationService moves students in and out of rooms. Every mutation keeps
// four records aligned without a surrounding transaction: the room (seat
// counter and occupants), the student mirror, the application mirror and the
// hostel availability counter. The seat counter is always touched first with
// a guarded single-statement update, so the room can never oversell; the
// mirrors follow, and a failure after the seat step is logged for
// reconciliation rather than rolled back.
type AllocationService struct {
	studentStore     StudentStore
	roomStore        RoomStore
	hostelStore      HostelStore
	applicationStore ApplicationStore
	cache            cache.Cache
}

// NewAllocationService creates a new allocation service instance
func NewAllocationService(studentStore StudentStore, roomStore RoomStore, hostelStore HostelStore, applicationStore ApplicationStore, c cache.Cache) *AllocationService {
	return &AllocationService{
		studentStore:     studentStore,
		roomStore:        roomStore,
		hostelStore:      hostelStore,
		applicationStore: applicationStore,
		cache:            c,
	}
}

// ApproveApplication approves a pending application and houses the student in
// the room identified by number and floor within the application's hostel.
func (s *AllocationService) ApproveApplication(ctx context.Context, applicationID int64, roomNumber, floor string) (*dto.AllocationResult, error) {
	app, err := s.applicationStore.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	if app == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	if app.Status != models.StatusPending {
		return nil, apperrors.ErrAlreadyProcessed
	}

	student, err := s.studentStore.GetByID(ctx, app.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.IsBlacklisted {
		return nil, apperrors.ErrStudentBlacklisted
	}

	room, err := s.roomStore.GetByNaturalKey(ctx, app.HostelID, roomNumber, floor)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	if err := s.placeStudent(ctx, student, room); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.applicationStore.Approve(ctx, app.ID, room.RoomNumber, room.Floor, now); err != nil {
		s.logReconciliation("approve", student.ID, room.ID, "application mirror not updated", err)
		return nil, fmt.Errorf("error approving application: %w", err)
	}
	app.Status = models.StatusApproved
	app.RoomNumber = room.RoomNumber
	app.Floor = room.Floor
	app.ApprovedOn = &now

	if err := s.studentStore.SetApplicationStatus(ctx, student.ID, models.StatusApproved); err != nil {
		s.logReconciliation("approve", student.ID, room.ID, "student status mirror not updated", err)
	}
	student.ApplicationStatus = models.StatusApproved

	s.refreshAvailability(ctx, room.HostelID)
	s.invalidateDashboard(ctx)

	refreshed, err := s.roomStore.GetByID(ctx, room.ID)
	if err == nil && refreshed != nil {
		room = refreshed
	}

	logger.Info().
		Int64("applicationId", app.ID).
		Int64("studentId", student.ID).
		Int64("roomId", room.ID).
		Msg("Application approved and room assigned")

	return &dto.AllocationResult{Student: student, Room: room, Application: app}, nil
}

// RejectApplication rejects a pending application with a reason. Approved
// applications cannot be rejected; the student has to be removed from the
// room first.
func (s *AllocationService) RejectApplication(ctx context.Context, applicationID int64, reason string) (*models.Application, error) {
	app, err := s.applicationStore.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	if app == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	return s.reject(ctx, app, reason)
}

// RejectApplicationByPNR rejects the application of the student with the
// given PNR
func (s *AllocationService) RejectApplicationByPNR(ctx context.Context, pnr, reason string) (*models.Application, error) {
	app, err := s.applicationStore.GetByStudentPNR(ctx, pnr)
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	if app == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	return s.reject(ctx, app, reason)
}

func (s *AllocationService) reject(ctx context.Context, app *models.Application, reason string) (*models.Application, error) {
	if app.Status == models.StatusApproved {
		return nil, apperrors.ErrApplicationApproved
	}
	if app.Status != models.StatusPending {
		return nil, apperrors.ErrAlreadyProcessed
	}

	if err := s.applicationStore.Reject(ctx, app.ID, reason); err != nil {
		return nil, fmt.Errorf("error rejecting application: %w", err)
	}
	app.Status = models.StatusRejected
	app.RejectionReason = reason

	if err := s.studentStore.SetApplicationStatus(ctx, app.StudentID, models.StatusRejected); err != nil {
		s.logReconciliation("reject", app.StudentID, 0, "student status mirror not updated", err)
	}

	s.invalidateDashboard(ctx)

	logger.Info().Int64("applicationId", app.ID).Msg("Application rejected")
	return app, nil
}

// AssignRoom houses a student directly in a room by id, bypassing the
// application flow. If the student has an application it is mirrored to
// approved so the two records agree.
func (s *AllocationService) AssignRoom(ctx context.Context, studentID, hostelID, roomID int64) (*dto.AllocationResult, error) {
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
	if student.AssignedRoomID != nil {
		return nil, apperrors.ErrAlreadyInRoom
	}

	room, err := s.roomInHostel(ctx, roomID, hostelID)
	if err != nil {
		return nil, err
	}

	if err := s.placeStudent(ctx, student, room); err != nil {
		return nil, err
	}

	app, err := s.applicationStore.GetByStudentID(ctx, studentID)
	if err == nil && app != nil {
		now := time.Now()
		if err := s.applicationStore.Approve(ctx, app.ID, room.RoomNumber, room.Floor, now); err != nil {
			s.logReconciliation("assign", studentID, roomID, "application mirror not updated", err)
		} else {
			app.Status = models.StatusApproved
			app.RoomNumber = room.RoomNumber
			app.Floor = room.Floor
			app.ApprovedOn = &now
		}
		if err := s.studentStore.SetApplicationStatus(ctx, studentID, models.StatusApproved); err != nil {
			s.logReconciliation("assign", studentID, roomID, "student status mirror not updated", err)
		}
		student.ApplicationStatus = models.StatusApproved
	}

	s.refreshAvailability(ctx, hostelID)
	s.invalidateDashboard(ctx)

	logger.Info().Int64("studentId", studentID).Int64("roomId", roomID).Msg("Room assigned to student")
	return &dto.AllocationResult{Student: student, Room: room, Application: app}, nil
}

// ChangeRoom moves a housed student with an approved application into
// another room, possibly in another hostel. The new seat is claimed before
// the old one is released, so a failed claim leaves everything untouched.
func (s *AllocationService) ChangeRoom(ctx context.Context, studentID, hostelID, roomID int64) (*dto.AllocationResult, error) {
	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.AssignedRoomID == nil {
		return nil, apperrors.ErrStudentNoRoom
	}

	app, err := s.applicationStore.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	if app == nil || app.Status != models.StatusApproved {
		return nil, apperrors.ErrNoApprovedApplication
	}

	if *student.AssignedRoomID == roomID {
		return nil, apperrors.ErrAlreadyInRoom
	}

	newRoom, err := s.roomInHostel(ctx, roomID, hostelID)
	if err != nil {
		return nil, err
	}

	result, err := s.move(ctx, student, *student.AssignedRoomID, newRoom)
	if err != nil {
		return nil, err
	}

	if err := s.applicationStore.SetRoomMirror(ctx, app.ID, newRoom.HostelID, newRoom.RoomNumber, newRoom.Floor); err != nil {
		s.logReconciliation("change", studentID, roomID, "application mirror not updated", err)
	}
	app.HostelID = newRoom.HostelID
	app.RoomNumber = newRoom.RoomNumber
	app.Floor = newRoom.Floor
	result.Application = app

	logger.Info().Int64("studentId", studentID).Int64("roomId", roomID).Msg("Student moved to another room")
	return result, nil
}

// ReassignRoom re-houses a student without requiring an approved
// application. Used for administrative corrections; a remark is recorded on
// the student.
func (s *AllocationService) ReassignRoom(ctx context.Context, studentID, hostelID, roomID int64, remark string) (*dto.AllocationResult, error) {
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

	newRoom, err := s.roomInHostel(ctx, roomID, hostelID)
	if err != nil {
		return nil, err
	}

	if remark == "" {
		remark = defaultReassignRemark
	}

	var result *dto.AllocationResult
	if student.AssignedRoomID != nil {
		if *student.AssignedRoomID == roomID {
			// Already where they should be; only refresh the remark.
			if err := s.studentStore.SetRemarks(ctx, studentID, remark); err != nil {
				return nil, fmt.Errorf("error updating remarks: %w", err)
			}
			student.Remarks = remark
			return &dto.AllocationResult{Student: student, Room: newRoom}, nil
		}
		result, err = s.move(ctx, student, *student.AssignedRoomID, newRoom)
	} else {
		err = s.placeStudent(ctx, student, newRoom)
		result = &dto.AllocationResult{Student: student, Room: newRoom}
		if err == nil {
			s.refreshAvailability(ctx, hostelID)
			s.invalidateDashboard(ctx)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := s.studentStore.SetRemarks(ctx, studentID, remark); err != nil {
		s.logReconciliation("reassign", studentID, roomID, "student remarks not updated", err)
	}
	student.Remarks = remark

	app, err := s.applicationStore.GetByStudentID(ctx, studentID)
	if err == nil && app != nil && app.Status == models.StatusApproved {
		if err := s.applicationStore.SetRoomMirror(ctx, app.ID, newRoom.HostelID, newRoom.RoomNumber, newRoom.Floor); err != nil {
			s.logReconciliation("reassign", studentID, roomID, "application mirror not updated", err)
		} else {
			app.HostelID = newRoom.HostelID
			app.RoomNumber = newRoom.RoomNumber
			app.Floor = newRoom.Floor
		}
		result.Application = app
	}

	logger.Info().Int64("studentId", studentID).Int64("roomId", roomID).Msg("Student reassigned to room")
	return result, nil
}

// RemoveFromRoom evicts a student from their current room. Both the student
// and the application end up disallocated, and the seat is freed.
func (s *AllocationService) RemoveFromRoom(ctx context.Context, studentID int64, remark string) (*dto.AllocationResult, error) {
	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.AssignedRoomID == nil {
		return nil, apperrors.ErrStudentNoRoom
	}

	roomID := *student.AssignedRoomID
	room, err := s.roomStore.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	if remark == "" {
		remark = defaultRemoveRemark
	}

	if err := s.roomStore.ReleaseSeat(ctx, roomID); err != nil {
		return nil, fmt.Errorf("error releasing seat: %w", err)
	}
	if err := s.roomStore.RemoveOccupant(ctx, roomID, studentID); err != nil {
		s.logReconciliation("remove", studentID, roomID, "occupant row not removed", err)
	}

	if err := s.studentStore.ClearRoomAssignment(ctx, studentID); err != nil {
		s.logReconciliation("remove", studentID, roomID, "student room mirror not cleared", err)
	}
	student.AssignedRoomID = nil
	student.RoomNumber = ""
	student.Floor = ""
	student.HostelName = ""

	if err := s.studentStore.SetApplicationStatus(ctx, studentID, models.StatusDisallocated); err != nil {
		s.logReconciliation("remove", studentID, roomID, "student status mirror not updated", err)
	}
	student.ApplicationStatus = models.StatusDisallocated

	if err := s.studentStore.SetRemarks(ctx, studentID, remark); err != nil {
		s.logReconciliation("remove", studentID, roomID, "student remarks not updated", err)
	}
	student.Remarks = remark

	var app *models.Application
	app, err = s.applicationStore.GetByStudentID(ctx, studentID)
	if err == nil && app != nil {
		if err := s.applicationStore.Disallocate(ctx, app.ID, remark); err != nil {
			s.logReconciliation("remove", studentID, roomID, "application not disallocated", err)
		} else {
			app.Status = models.StatusDisallocated
			app.RoomNumber = ""
			app.Floor = ""
			app.ApprovedOn = nil
			app.Remarks = remark
		}
	}

	if room != nil {
		s.refreshAvailability(ctx, room.HostelID)
	}
	s.invalidateDashboard(ctx)

	logger.Info().Int64("studentId", studentID).Int64("roomId", roomID).Msg("Student removed from room")
	return &dto.AllocationResult{Student: student, Room: room, Application: app}, nil
}

// ChangeRoomStatus sets a room's status. Marking a room filled is only
// accepted when it is actually at capacity; empty and filled are otherwise
// derived from occupancy, while damaged and maintenance stick until staff
// clear them.
func (s *AllocationService) ChangeRoomStatus(ctx context.Context, roomID int64, status models.RoomStatus, notes string) (*models.Room, error) {
	if !models.IsValidRoomStatus(status) {
		return nil, apperrors.ErrRoomStatusInvalid
	}

	room, err := s.roomStore.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	if status == models.RoomFilled && room.OccupiedSpaces < room.Capacity {
		return nil, apperrors.ErrRoomNotAtCapacity
	}

	if err := s.roomStore.SetStatus(ctx, roomID, status, notes); err != nil {
		return nil, fmt.Errorf("error changing room status: %w", err)
	}
	room.Status = status
	room.Notes = notes

	s.refreshAvailability(ctx, room.HostelID)
	s.invalidateDashboard(ctx)

	logger.Info().Int64("roomId", roomID).Str("status", string(status)).Msg("Room status changed")
	return room, nil
}

// placeStudent claims a seat and writes the occupant row and student mirror.
// The seat claim happens first; if a later step fails the claim is released
// so the counter does not leak.
func (s *AllocationService) placeStudent(ctx context.Context, student *models.Student, room *models.Room) error {
	if err := s.roomStore.AcquireSeat(ctx, room.ID); err != nil {
		if apperrors.Is(err, repositories.ErrNoFreeSeat) {
			return apperrors.ErrRoomFull
		}
		return fmt.Errorf("error acquiring seat: %w", err)
	}

	occupant := &models.Occupant{
		RoomID:    room.ID,
		StudentID: student.ID,
		Name:      student.Name,
		PNR:       student.PNR,
	}
	if err := s.roomStore.AddOccupant(ctx, occupant); err != nil {
		if releaseErr := s.roomStore.ReleaseSeat(ctx, room.ID); releaseErr != nil {
			s.logReconciliation("place", student.ID, room.ID, "seat not released after failed occupant insert", releaseErr)
		}
		return fmt.Errorf("error adding occupant: %w", err)
	}

	hostel, err := s.hostelStore.GetByID(ctx, room.HostelID)
	hostelName := ""
	if err == nil && hostel != nil {
		hostelName = hostel.Name
	}

	if err := s.studentStore.SetRoomAssignment(ctx, student.ID, room.ID, room.RoomNumber, room.Floor, hostelName); err != nil {
		s.logReconciliation("place", student.ID, room.ID, "student room mirror not updated", err)
	}
	roomID := room.ID
	student.AssignedRoomID = &roomID
	student.RoomNumber = room.RoomNumber
	student.Floor = room.Floor
	student.HostelName = hostelName

	return nil
}

// move re-houses a student. The new seat counter is claimed first so a full
// target room fails before anything changes. The occupant row is unique per
// student, so the old row must be deleted before the new one is inserted;
// a failed insert restores the old row and releases the claimed seat.
func (s *AllocationService) move(ctx context.Context, student *models.Student, oldRoomID int64, newRoom *models.Room) (*dto.AllocationResult, error) {
	oldRoom, err := s.roomStore.GetByID(ctx, oldRoomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving current room: %w", err)
	}

	if err := s.roomStore.AcquireSeat(ctx, newRoom.ID); err != nil {
		if apperrors.Is(err, repositories.ErrNoFreeSeat) {
			return nil, apperrors.ErrRoomFull
		}
		return nil, fmt.Errorf("error acquiring seat: %w", err)
	}

	if err := s.roomStore.RemoveOccupant(ctx, oldRoomID, student.ID); err != nil {
		if releaseErr := s.roomStore.ReleaseSeat(ctx, newRoom.ID); releaseErr != nil {
			s.logReconciliation("move", student.ID, newRoom.ID, "new seat not released after failed occupant removal", releaseErr)
		}
		return nil, fmt.Errorf("error removing occupant: %w", err)
	}

	occupant := &models.Occupant{
		RoomID:    newRoom.ID,
		StudentID: student.ID,
		Name:      student.Name,
		PNR:       student.PNR,
	}
	if err := s.roomStore.AddOccupant(ctx, occupant); err != nil {
		if releaseErr := s.roomStore.ReleaseSeat(ctx, newRoom.ID); releaseErr != nil {
			s.logReconciliation("move", student.ID, newRoom.ID, "new seat not released after failed occupant insert", releaseErr)
		}
		restored := &models.Occupant{
			RoomID:    oldRoomID,
			StudentID: student.ID,
			Name:      student.Name,
			PNR:       student.PNR,
		}
		if restoreErr := s.roomStore.AddOccupant(ctx, restored); restoreErr != nil {
			s.logReconciliation("move", student.ID, oldRoomID, "old occupant row not restored", restoreErr)
		}
		return nil, fmt.Errorf("error adding occupant: %w", err)
	}

	hostel, err := s.hostelStore.GetByID(ctx, newRoom.HostelID)
	hostelName := ""
	if err == nil && hostel != nil {
		hostelName = hostel.Name
	}
	if err := s.studentStore.SetRoomAssignment(ctx, student.ID, newRoom.ID, newRoom.RoomNumber, newRoom.Floor, hostelName); err != nil {
		s.logReconciliation("move", student.ID, newRoom.ID, "student room mirror not updated", err)
	}
	roomID := newRoom.ID
	student.AssignedRoomID = &roomID
	student.RoomNumber = newRoom.RoomNumber
	student.Floor = newRoom.Floor
	student.HostelName = hostelName

	if err := s.roomStore.ReleaseSeat(ctx, oldRoomID); err != nil {
		s.logReconciliation("move", student.ID, oldRoomID, "old seat not released", err)
	}

	s.refreshAvailability(ctx, newRoom.HostelID)
	if oldRoom != nil && oldRoom.HostelID != newRoom.HostelID {
		s.refreshAvailability(ctx, oldRoom.HostelID)
	}
	s.invalidateDashboard(ctx)

	return &dto.AllocationResult{Student: student, Room: newRoom}, nil
}

// roomInHostel loads a room and checks it belongs to the expected hostel
func (s *AllocationService) roomInHostel(ctx context.Context, roomID, hostelID int64) (*models.Room, error) {
	room, err := s.roomStore.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	if room.HostelID != hostelID {
		return nil, apperrors.ErrRoomMismatch
	}
	return room, nil
}

func (s *AllocationService) refreshAvailability(ctx context.Context, hostelID int64) {
	if err := s.hostelStore.RecomputeAvailability(ctx, hostelID); err != nil {
		logger.Warn().Err(err).Int64("hostelId", hostelID).Msg("Failed to recompute hostel availability")
	}
}

func (s *AllocationService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, "dashboard"); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate dashboard cache")
	}
}

// logReconciliation records a partial write so operators can repair the
// denormalized mirrors. The primary copy (the room seat counter) is already
// correct at this point.
func (s *AllocationService) logReconciliation(op string, studentID, roomID int64, what string, err error) {
	logger.Error().
		Err(err).
		Str("operation", op).
		Int64("studentId", studentID).
		Int64("roomId", roomID).
		Msg("Allocation mirror update failed, manual reconciliation needed: " + what)
}
