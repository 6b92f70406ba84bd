package attendance

import (
	"strings"

	"github.com/eakathit/TimeTracker/internal/pkg/validator"
)

type CheckInRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	WorkType  string   `json:"work_type"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	validTypes := []string{string(WorkTypeInFactory), string(WorkTypeOnSite), string(WorkTypeGroup)}
	if !validator.IsInSlice(r.WorkType, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be one of: in_factory, on_site, group",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type SubmitReportRequest struct {
	WorkType string  `json:"work_type"`
	Project  string  `json:"project"`
	Duration string  `json:"duration"`
	Hours    float64 `json:"hours"`
}

func (r *SubmitReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkType) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is required",
		})
	}

	if r.Hours < 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BackfillRequest lets an admin create or fix a record for a past day.
type BackfillRequest struct {
	ID           string   `json:"-"`
	EmployeeID   string   `json:"employee_id"`
	Date         string   `json:"date"`                     // YYYY-MM-DD
	CheckInTime  *string  `json:"check_in_time,omitempty"`  // RFC3339
	CheckOutTime *string  `json:"check_out_time,omitempty"` // RFC3339
	WorkType     *string  `json:"work_type,omitempty"`
	Status       *string  `json:"status,omitempty"`
	Overtime     *float64 `json:"overtime,omitempty"`
}

func (r *BackfillRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.CheckInTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be an RFC3339 timestamp",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be an RFC3339 timestamp",
			})
		}
	}

	if r.Status != nil {
		validStatuses := []string{string(StatusCheckedIn), string(StatusCompleted), string(StatusReportOnly)}
		if !validator.IsInSlice(strings.ToLower(*r.Status), validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: checked_in, completed, report_only",
			})
		}
	}

	if r.Overtime != nil && *r.Overtime < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime",
			Message: "overtime must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkRecordResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  string   `json:"employee_name,omitempty"`
	Date          string   `json:"date"`
	CheckInTime   *string  `json:"check_in_time,omitempty"`
	CheckOutTime  *string  `json:"check_out_time,omitempty"`
	WorkType      *string  `json:"work_type,omitempty"`
	Status        string   `json:"status"`
	Reports       []Report `json:"reports,omitempty"`
	RegularHours  *float64 `json:"regular_hours,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
}

type RangeFilter struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(f.EndDate)
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}
