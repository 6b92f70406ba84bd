package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eakathit/TimeTracker/internal/domain/leave"
	"github.com/eakathit/TimeTracker/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, leave_type, duration_type, start_date, end_date,
	start_time, end_time, reason, status, approved_by, approved_at, created_at, updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.DurationType,
		&req.StartDate, &req.EndDate, &req.StartTime, &req.EndTime,
		&req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovedAt,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

func (l *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, duration_type, start_date, end_date, start_time, end_time, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + leaveColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.LeaveType, request.DurationType,
		request.StartDate, request.EndDate, request.StartTime, request.EndTime,
		request.Reason, request.Status,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (l *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// UpdateStatus only matches pending rows, so a decided request can
// never transition twice.
func (l *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy string) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, approvedBy, id, leave.StatusPending).Scan(&updatedID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}

	// Distinguish a missing request from one already decided.
	if _, getErr := l.GetByID(ctx, id); getErr != nil {
		return getErr
	}
	return leave.ErrAlreadyProcessed
}

func (l *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	return l.queryRequests(ctx, q, query, employeeID)
}

func (l *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.duration_type, lr.start_date, lr.end_date,
			lr.start_time, lr.end_time, lr.reason, lr.status, lr.approved_by, lr.approved_at,
			lr.created_at, lr.updated_at, e.full_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.status = $1
		ORDER BY lr.created_at ASC
	`

	rows, err := q.Query(ctx, query, leave.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.DurationType,
			&req.StartDate, &req.EndDate, &req.StartTime, &req.EndTime,
			&req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovedAt,
			&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListApprovedStartingBefore is deliberately one-sided; the payroll
// pass re-checks end_date against the range start in memory.
func (l *leaveRequestRepositoryImpl) ListApprovedStartingBefore(ctx context.Context, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE status = $1 AND start_date <= $2
		ORDER BY created_at ASC
	`

	return l.queryRequests(ctx, q, query, leave.StatusApproved, end)
}

func (l *leaveRequestRepositoryImpl) queryRequests(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
