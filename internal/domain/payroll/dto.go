package payroll

import "github.com/eakathit/TimeTracker/internal/pkg/validator"

// SummaryQuery selects the range and optional filters for a payroll
// summary pass.
type SummaryQuery struct {
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	EmployeeID string `json:"employee_id,omitempty"`
	Department string `json:"department,omitempty"`
	Name       string `json:"name,omitempty"` // case-insensitive substring
}

func (q *SummaryQuery) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(q.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(q.EndDate)
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

// SummaryRow is one formatted row of the payroll table. Values are
// carried over from the aggregator unchanged; only presentation fields
// are added.
type SummaryRow struct {
	EmployeeID       string   `json:"employee_id"`
	FullName         string   `json:"full_name"`
	Department       string   `json:"department"`
	PayType          string   `json:"pay_type"`
	RegularHours     float64  `json:"regular_hours"`
	OvertimeHours15x float64  `json:"overtime_hours_1_5x"`
	HolidayHours1x   float64  `json:"holiday_hours_1x"`
	HolidayHours2x   float64  `json:"holiday_hours_2x"`
	OvertimeHours3x  float64  `json:"overtime_hours_3x"`
	WorkedDays       int      `json:"worked_days"`
	ReportedDays     int      `json:"reported_days"`
	LateDays         int      `json:"late_days"`
	LeaveDays        int      `json:"leave_days"`
	AbsentDays       int      `json:"absent_days"`
	Attendance       string   `json:"attendance"` // "late L / leave V / absent A"
	GrossPay         *float64 `json:"gross_pay,omitempty"`
}
