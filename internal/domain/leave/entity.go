package leave

import "time"

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeMaternity LeaveType = "maternity"
)

type DurationType string

const (
	DurationFullDay DurationType = "full_day"
	DurationHourly  DurationType = "hourly"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest is one leave submission. Invariants: EndDate >= StartDate;
// hourly leave has EndDate == StartDate and carries HH:MM times.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	LeaveType    LeaveType
	DurationType DurationType
	StartDate    time.Time
	EndDate      time.Time
	StartTime    *string // HH:MM, hourly only
	EndTime      *string // HH:MM, hourly only
	Reason       string

	Status     Status
	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}
