package overtime

import "context"

// OvertimeRequestRepository defines data access methods for overtime
// requests.
type OvertimeRequestRepository interface {
	Create(ctx context.Context, request OvertimeRequest) (OvertimeRequest, error)

	GetByID(ctx context.Context, id string) (OvertimeRequest, error)

	// UpdateStatus transitions a pending request exactly once. Returns
	// ErrAlreadyProcessed when the request is no longer pending.
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy string) error

	ListByEmployee(ctx context.Context, employeeID string) ([]OvertimeRequest, error)

	ListPending(ctx context.Context) ([]OvertimeRequest, error)
}
