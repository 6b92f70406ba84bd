package payroll

import "github.com/eakathit/TimeTracker/internal/domain/employee"

// EmployeeSummary holds the per-employee accumulators for one queried
// range. Derived on every query, never persisted.
type EmployeeSummary struct {
	EmployeeID string
	FullName   string
	Department string
	PayType    employee.PayType

	// Hours, routed by day type. Working days feed RegularHours and
	// OvertimeHours15x; holidays and weekends actually worked feed the
	// holiday buckets (1x for monthly staff, 2x for daily staff) and
	// OvertimeHours3x.
	RegularHours     float64
	OvertimeHours15x float64
	HolidayHours1x   float64
	HolidayHours2x   float64
	OvertimeHours3x  float64

	// Day counters. WorkedDays + LeaveDays + AbsentDays + IdleDays
	// partitions the queried range exactly.
	WorkedDays   int
	ReportedDays int
	LeaveDays    int
	AbsentDays   int
	IdleDays     int
	LateDays     int
}
