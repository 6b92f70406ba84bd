package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/eakathit/TimeTracker/internal/domain/overtime"
	"github.com/eakathit/TimeTracker/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type overtimeRequestRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) overtime.OvertimeRequestRepository {
	return &overtimeRequestRepositoryImpl{db: db}
}

const overtimeColumns = `id, employee_id, date, start_time, end_time, reason, status,
	approved_by, approved_at, created_at, updated_at`

func scanOvertimeRequest(row pgx.Row) (overtime.OvertimeRequest, error) {
	var req overtime.OvertimeRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime,
		&req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovedAt,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

func (o *overtimeRequestRepositoryImpl) Create(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, o.db)

	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	query := `
		INSERT INTO overtime_requests (id, employee_id, date, start_time, end_time, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + overtimeColumns

	created, err := scanOvertimeRequest(q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.Date, request.StartTime, request.EndTime,
		request.Reason, request.Status,
	))
	if err != nil {
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return created, nil
}

func (o *overtimeRequestRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, o.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests WHERE id = $1`

	req, err := scanOvertimeRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
		}
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return req, nil
}

// UpdateStatus only matches pending rows; approval can fire at most
// once per request, which keeps the overtime credit idempotent.
func (o *overtimeRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status overtime.Status, approvedBy string) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE overtime_requests
		SET status = $1, approved_by = $2, approved_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, approvedBy, id, overtime.StatusPending).Scan(&updatedID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to update overtime request status: %w", err)
	}

	if _, getErr := o.GetByID(ctx, id); getErr != nil {
		return getErr
	}
	return overtime.ErrAlreadyProcessed
}

func (o *overtimeRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		req, err := scanOvertimeRequest(rows)
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

func (o *overtimeRequestRepositoryImpl) ListPending(ctx context.Context) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ot.id, ot.employee_id, ot.date, ot.start_time, ot.end_time, ot.reason, ot.status,
			ot.approved_by, ot.approved_at, ot.created_at, ot.updated_at, e.full_name
		FROM overtime_requests ot
		JOIN employees e ON e.id = ot.employee_id
		WHERE ot.status = $1
		ORDER BY ot.created_at ASC
	`

	rows, err := q.Query(ctx, query, overtime.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		var req overtime.OvertimeRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime,
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
