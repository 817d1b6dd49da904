package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account has been deactivated")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrMissingField     = errors.New("missing required field")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrStudentExists      = errors.New("email or PNR already exists")
	ErrStudentBlacklisted = errors.New("cannot assign room to blacklisted student")
	ErrStudentNoRoom      = errors.New("student has no assigned room")
)

// Admin errors
var (
	ErrAdminNotFound  = errors.New("admin not found")
	ErrAdminExists    = errors.New("email or admin ID already exists")
	ErrAdminHasHostel = errors.New("admin still manages hostels")
	ErrAdminImmutable = errors.New("operation not allowed on a superadmin")
	ErrInvalidPasskey = errors.New("invalid passkey")
)

// Hostel errors
var (
	ErrHostelNotFound = errors.New("hostel not found")
	ErrHostelExists   = errors.New("hostel with this name already exists")
	ErrHostelOccupied = errors.New("hostel has occupied rooms")
)

// Room errors
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomExists        = errors.New("room already exists in this hostel")
	ErrRoomFull          = errors.New("room is full")
	ErrRoomMismatch      = errors.New("room does not belong to this hostel")
	ErrRoomNotAtCapacity = errors.New("cannot mark room as filled when not at capacity")
	ErrRoomStatusInvalid = errors.New("invalid room status")
	ErrAlreadyInRoom     = errors.New("student is already assigned to this room")
)

// Application errors
var (
	ErrApplicationNotFound   = errors.New("application not found")
	ErrDuplicateApplication  = errors.New("student already has an application")
	ErrAlreadyProcessed      = errors.New("application has already been processed")
	ErrApplicationApproved   = errors.New("cannot reject an approved application")
	ErrNoApprovedApplication = errors.New("student does not have an approved application")
)

// CustomError carries an underlying sentinel with request-specific context.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Is reports whether target or any error in errList matches err
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
