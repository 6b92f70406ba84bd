package overtime

import "context"

// OvertimeService defines business logic for overtime requests.
type OvertimeService interface {
	// Create submits a new pending overtime request for the
	// authenticated employee.
	Create(ctx context.Context, req CreateOvertimeRequest) (OvertimeRequestResponse, error)

	// Approve transitions a pending request to approved and credits the
	// matching work record with whole half-hour blocks. The transition
	// and the credit happen in one transaction.
	Approve(ctx context.Context, id string) (OvertimeRequestResponse, error)

	// Reject transitions a pending request to rejected, exactly once.
	Reject(ctx context.Context, id string) (OvertimeRequestResponse, error)

	GetMyRequests(ctx context.Context) ([]OvertimeRequestResponse, error)

	ListPending(ctx context.Context) ([]OvertimeRequestResponse, error)
}
