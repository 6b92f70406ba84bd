package attendance

import "context"

// WorkRecordService defines business logic for attendance operations.
type WorkRecordService interface {
	// CheckIn opens today's work record for the authenticated employee.
	CheckIn(ctx context.Context, req CheckInRequest) (WorkRecordResponse, error)

	// CheckOut closes the open record and stamps computed hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (WorkRecordResponse, error)

	// SubmitReport appends a daily report to today's record, creating a
	// report-only record when the employee never clocked in.
	SubmitReport(ctx context.Context, req SubmitReportRequest) (WorkRecordResponse, error)

	// Backfill creates or fixes a record for a past day (admin).
	Backfill(ctx context.Context, req BackfillRequest) (WorkRecordResponse, error)

	// GetMyRecords returns the authenticated employee's records in range.
	GetMyRecords(ctx context.Context, filter RangeFilter) ([]WorkRecordResponse, error)
}
