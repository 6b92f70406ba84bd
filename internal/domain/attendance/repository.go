package attendance

import (
	"context"
	"time"
)

// WorkRecordRepository defines data access methods for work records.
type WorkRecordRepository interface {
	Create(ctx context.Context, record WorkRecord) (WorkRecord, error)

	GetByID(ctx context.Context, id string) (WorkRecord, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, dateKey string) (*WorkRecord, error)

	Update(ctx context.Context, record WorkRecord) error

	// ListRange returns all records whose date falls in [start, end].
	ListRange(ctx context.Context, start, end time.Time) ([]WorkRecord, error)

	// ListEmployeeRange returns one employee's records in [start, end],
	// newest first.
	ListEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]WorkRecord, error)

	// IncrementOvertime atomically adds hours to the record's recorded
	// overtime, treating an absent override as zero. Used by OT request
	// approval; never overwrites.
	IncrementOvertime(ctx context.Context, id string, hours float64) error
}
