package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors onto the response envelope. Validation
// failures and allocation conflicts both answer 400; missing resources 404;
// authentication problems 401; everything unrecognized 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrRoomFull):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeRoomFull, "Room is full")))
	case errors.Is(err, apperrors.ErrRoomMismatch):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeRoomMismatch, "Room does not belong to this hostel")))
	case errors.Is(err, apperrors.ErrAlreadyProcessed):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeAlreadyProcessed, "Application has already been processed")))
	case errors.Is(err, apperrors.ErrApplicationApproved):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeAlreadyProcessed, "Cannot reject an approved application")))
	case errors.Is(err, apperrors.ErrNoApprovedApplication):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student does not have an approved application")))
	case errors.Is(err, apperrors.ErrStudentNoRoom):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNoAssignedRoom, "Student has no assigned room")))
	case errors.Is(err, apperrors.ErrStudentBlacklisted):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBlacklisted, "Cannot assign room to blacklisted student")))
	case errors.Is(err, apperrors.ErrAlreadyInRoom):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student is already assigned to this room")))
	case errors.Is(err, apperrors.ErrRoomNotAtCapacity):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Cannot mark room as filled when not at capacity")))
	case errors.Is(err, apperrors.ErrRoomStatusInvalid):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room status")))

	case apperrors.Is(err, apperrors.ErrStudentExists,
		apperrors.ErrAdminExists,
		apperrors.ErrHostelExists,
		apperrors.ErrRoomExists,
		apperrors.ErrDuplicateApplication):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceConflict, err.Error())))

	case apperrors.Is(err, apperrors.ErrHostelOccupied,
		apperrors.ErrAdminHasHostel,
		apperrors.ErrAdminImmutable,
		apperrors.ErrConflict):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceConflict, err.Error())))

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrAdminNotFound,
		apperrors.ErrHostelNotFound,
		apperrors.ErrRoomNotFound,
		apperrors.ErrApplicationNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrInvalidPasskey):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid passkey")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account has been deactivated")))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrMissingField,
		apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	default:
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// HandleValidationError answers a request binding failure
func HandleValidationError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
		WithDetails(err.Error())
	c.JSON(400, dto.NewErrorResponse(errorDetail))
}
