package leave

import "context"

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	// Create submits a new pending leave request for the authenticated
	// employee.
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)

	// Approve transitions a pending request to approved, exactly once.
	Approve(ctx context.Context, id string) (LeaveRequestResponse, error)

	// Reject transitions a pending request to rejected, exactly once.
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveRequestResponse, error)

	GetMyRequests(ctx context.Context) ([]LeaveRequestResponse, error)

	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)
}
