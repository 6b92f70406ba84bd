package response

import (
	"errors"
	"net/http"

	"github.com/eakathit/TimeTracker/internal/domain/attendance"
	"github.com/eakathit/TimeTracker/internal/domain/auth"
	"github.com/eakathit/TimeTracker/internal/domain/employee"
	"github.com/eakathit/TimeTracker/internal/domain/leave"
	"github.com/eakathit/TimeTracker/internal/domain/overtime"
	"github.com/eakathit/TimeTracker/internal/domain/payroll"
	"github.com/eakathit/TimeTracker/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No open check-in for today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrWorkRecordNotFound):
		NotFound(w, "Work record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrAlreadyProcessed):
		Conflict(w, "Overtime request already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
