package overtime

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// OvertimeRequest is a post-hoc claim for extra hours on a specific
// date. Approval credits the matching work record in half-hour blocks.
type OvertimeRequest struct {
	ID         string
	EmployeeID string
	Date       time.Time
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	Reason     string

	Status     Status
	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// CreditHours converts the requested span into payable overtime hours:
// whole half-hour blocks only, remainders discarded. Malformed or
// inverted spans credit zero.
func (r OvertimeRequest) CreditHours(startMinutes, endMinutes int) float64 {
	if startMinutes < 0 || endMinutes < 0 || endMinutes <= startMinutes {
		return 0
	}
	blocks := (endMinutes - startMinutes) / 30
	return float64(blocks) * 0.5
}
