package leave

import (
	"github.com/eakathit/TimeTracker/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveType    string  `json:"leave_type"`
	DurationType string  `json:"duration_type"`
	StartDate    string  `json:"start_date"` // YYYY-MM-DD
	EndDate      string  `json:"end_date"`   // YYYY-MM-DD
	StartTime    *string `json:"start_time,omitempty"` // HH:MM, hourly only
	EndTime      *string `json:"end_time,omitempty"`   // HH:MM, hourly only
	Reason       string  `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	validTypes := []string{
		string(LeaveTypeAnnual), string(LeaveTypeSick),
		string(LeaveTypePersonal), string(LeaveTypeMaternity),
	}
	if !validator.IsInSlice(r.LeaveType, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: annual, sick, personal, maternity",
		})
	}

	if !validator.IsInSlice(r.DurationType, []string{string(DurationFullDay), string(DurationHourly)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_type",
			Message: "duration_type must be one of: full_day, hourly",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.DurationType == string(DurationHourly) {
		if okStart && okEnd && !end.Equal(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "hourly leave must start and end on the same date",
			})
		}

		if r.StartTime == nil || !validator.IsValidClock(*r.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format for hourly leave",
			})
		}
		if r.EndTime == nil || !validator.IsValidClock(*r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format for hourly leave",
			})
		}
		if r.StartTime != nil && r.EndTime != nil &&
			validator.IsValidClock(*r.StartTime) && validator.IsValidClock(*r.EndTime) &&
			validator.ClockToMinutes(*r.EndTime) <= validator.ClockToMinutes(*r.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be after start_time",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{{
			Field:   "reason",
			Message: "rejection reason is required",
		}}
	}
	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	DurationType string  `json:"duration_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
}
