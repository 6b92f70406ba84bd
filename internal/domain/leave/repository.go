package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus transitions a pending request exactly once. Returns
	// ErrAlreadyProcessed when the request is no longer pending.
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy string) error

	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	ListPending(ctx context.Context) ([]LeaveRequest, error)

	// ListApprovedStartingBefore returns approved requests with
	// start_date <= end. The store only expresses a one-sided range;
	// callers re-check end_date >= start in memory.
	ListApprovedStartingBefore(ctx context.Context, end time.Time) ([]LeaveRequest, error)
}
