package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eakathit/TimeTracker/internal/domain/attendance"
	"github.com/eakathit/TimeTracker/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workRecordRepositoryImpl struct {
	db *database.DB
}

func NewWorkRecordRepository(db *database.DB) attendance.WorkRecordRepository {
	return &workRecordRepositoryImpl{db: db}
}

// Check-in, check-out, and reports are stored as jsonb; the reports
// column historically held a bare object for single-report days, which
// UnmarshalReports still tolerates on the way out.
func scanWorkRecord(row pgx.Row) (attendance.WorkRecord, error) {
	var rec attendance.WorkRecord
	var checkIn, checkOut, reports []byte

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &checkIn, &checkOut,
		&rec.Status, &reports, &rec.Overtime, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.WorkRecord{}, err
	}

	if len(checkIn) > 0 {
		var ci attendance.CheckIn
		if err := json.Unmarshal(checkIn, &ci); err == nil {
			rec.CheckIn = &ci
		}
	}
	if len(checkOut) > 0 {
		var co attendance.CheckOut
		if err := json.Unmarshal(checkOut, &co); err == nil {
			rec.CheckOut = &co
		}
	}
	rec.Reports = attendance.UnmarshalReports(reports)

	return rec, nil
}

func marshalTimes(rec attendance.WorkRecord) (checkIn, checkOut, reports []byte, err error) {
	if rec.CheckIn != nil {
		if checkIn, err = json.Marshal(rec.CheckIn); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to marshal check-in: %w", err)
		}
	}
	if rec.CheckOut != nil {
		if checkOut, err = json.Marshal(rec.CheckOut); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to marshal check-out: %w", err)
		}
	}
	if rec.Reports != nil {
		if reports, err = json.Marshal(rec.Reports); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to marshal reports: %w", err)
		}
	}
	return checkIn, checkOut, reports, nil
}

const workRecordColumns = `id, employee_id, date, check_in, check_out, status, reports, overtime, created_at, updated_at`

func (w *workRecordRepositoryImpl) Create(ctx context.Context, rec attendance.WorkRecord) (attendance.WorkRecord, error) {
	q := GetQuerier(ctx, w.db)

	checkIn, checkOut, reports, err := marshalTimes(rec)
	if err != nil {
		return attendance.WorkRecord{}, err
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `
		INSERT INTO work_records (id, employee_id, date, check_in, check_out, status, reports, overtime)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + workRecordColumns

	created, err := scanWorkRecord(q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, checkIn, checkOut, rec.Status, reports, rec.Overtime,
	))
	if err != nil {
		return attendance.WorkRecord{}, fmt.Errorf("failed to create work record: %w", err)
	}

	return created, nil
}

func (w *workRecordRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.WorkRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `SELECT ` + workRecordColumns + ` FROM work_records WHERE id = $1`

	rec, err := scanWorkRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.WorkRecord{}, attendance.ErrWorkRecordNotFound
		}
		return attendance.WorkRecord{}, fmt.Errorf("failed to get work record: %w", err)
	}

	return rec, nil
}

func (w *workRecordRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, dateKey string) (*attendance.WorkRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `SELECT ` + workRecordColumns + ` FROM work_records WHERE employee_id = $1 AND date = $2`

	rec, err := scanWorkRecord(q.QueryRow(ctx, query, employeeID, dateKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work record by employee and date: %w", err)
	}

	return &rec, nil
}

func (w *workRecordRepositoryImpl) Update(ctx context.Context, rec attendance.WorkRecord) error {
	q := GetQuerier(ctx, w.db)

	checkIn, checkOut, reports, err := marshalTimes(rec)
	if err != nil {
		return err
	}

	query := `
		UPDATE work_records
		SET check_in = $1, check_out = $2, status = $3, reports = $4, overtime = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err = q.QueryRow(ctx, query, checkIn, checkOut, rec.Status, reports, rec.Overtime, rec.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrWorkRecordNotFound
		}
		return fmt.Errorf("failed to update work record: %w", err)
	}

	return nil
}

func (w *workRecordRepositoryImpl) ListRange(ctx context.Context, start, end time.Time) ([]attendance.WorkRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workRecordColumns + `
		FROM work_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC
	`

	return w.queryRecords(ctx, q, query, start, end)
}

func (w *workRecordRepositoryImpl) ListEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.WorkRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workRecordColumns + `
		FROM work_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC
	`

	return w.queryRecords(ctx, q, query, employeeID, start, end)
}

// IncrementOvertime adds approved hours to the recorded override,
// treating an absent value as zero. The single UPDATE keeps concurrent
// approvals from clobbering each other.
func (w *workRecordRepositoryImpl) IncrementOvertime(ctx context.Context, id string, hours float64) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE work_records
		SET overtime = COALESCE(overtime, 0) + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, hours, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrWorkRecordNotFound
		}
		return fmt.Errorf("failed to increment overtime: %w", err)
	}

	return nil
}

func (w *workRecordRepositoryImpl) queryRecords(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.WorkRecord, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.WorkRecord
	for rows.Next() {
		rec, err := scanWorkRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
