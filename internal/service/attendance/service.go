package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eakathit/TimeTracker/internal/domain/attendance"
	"github.com/eakathit/TimeTracker/internal/domain/calendar"
	"github.com/eakathit/TimeTracker/internal/pkg/validator"
	"github.com/eakathit/TimeTracker/internal/service/payroll"
	"github.com/go-chi/jwtauth/v5"
)

type WorkRecordServiceImpl struct {
	recordRepo attendance.WorkRecordRepository
	logger     *slog.Logger
}

func NewWorkRecordService(recordRepo attendance.WorkRecordRepository, logger *slog.Logger) attendance.WorkRecordService {
	return &WorkRecordServiceImpl{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

func (s *WorkRecordServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WorkRecordResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.WorkRecordResponse{}, err
	}

	now := time.Now()
	today := calendar.DateKey(now)

	existing, err := s.recordRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.WorkRecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}

	checkIn := &attendance.CheckIn{
		Timestamp: now,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		WorkType:  attendance.WorkType(req.WorkType),
	}

	if existing != nil {
		if existing.CheckIn != nil {
			return attendance.WorkRecordResponse{}, attendance.ErrAlreadyCheckedIn
		}

		// A report-only record gains the check-in.
		existing.CheckIn = checkIn
		existing.Status = attendance.StatusCheckedIn
		if err := s.recordRepo.Update(ctx, *existing); err != nil {
			return attendance.WorkRecordResponse{}, fmt.Errorf("failed to update record: %w", err)
		}
		return toResponse(*existing), nil
	}

	record, err := s.recordRepo.Create(ctx, attendance.WorkRecord{
		EmployeeID: employeeID,
		Date:       truncateToDate(now),
		CheckIn:    checkIn,
		Status:     attendance.StatusCheckedIn,
	})
	if err != nil {
		return attendance.WorkRecordResponse{}, fmt.Errorf("failed to create record: %w", err)
	}

	s.logger.InfoContext(ctx, "employee checked in",
		slog.String("employee_id", employeeID),
		slog.String("work_type", req.WorkType),
	)

	return toResponse(record), nil
}

func (s *WorkRecordServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.WorkRecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.WorkRecordResponse{}, err
	}

	now := time.Now()

	record, err := s.recordRepo.GetByEmployeeAndDate(ctx, employeeID, calendar.DateKey(now))
	if err != nil {
		return attendance.WorkRecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.WorkRecordResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.WorkRecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOut = &attendance.CheckOut{
		Timestamp: now,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	record.Status = attendance.StatusCompleted

	if err := s.recordRepo.Update(ctx, *record); err != nil {
		return attendance.WorkRecordResponse{}, fmt.Errorf("failed to update record: %w", err)
	}

	s.logger.InfoContext(ctx, "employee checked out", slog.String("employee_id", employeeID))

	return toResponse(*record), nil
}

func (s *WorkRecordServiceImpl) SubmitReport(ctx context.Context, req attendance.SubmitReportRequest) (attendance.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WorkRecordResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.WorkRecordResponse{}, err
	}

	now := time.Now()
	report := attendance.Report{
		WorkType: req.WorkType,
		Project:  req.Project,
		Duration: req.Duration,
		Hours:    req.Hours,
	}

	record, err := s.recordRepo.GetByEmployeeAndDate(ctx, employeeID, calendar.DateKey(now))
	if err != nil {
		return attendance.WorkRecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}

	if record == nil {
		created, err := s.recordRepo.Create(ctx, attendance.WorkRecord{
			EmployeeID: employeeID,
			Date:       truncateToDate(now),
			Status:     attendance.StatusReportOnly,
			Reports:    []attendance.Report{report},
		})
		if err != nil {
			return attendance.WorkRecordResponse{}, fmt.Errorf("failed to create record: %w", err)
		}
		return toResponse(created), nil
	}

	record.Reports = append(record.Reports, report)
	if err := s.recordRepo.Update(ctx, *record); err != nil {
		return attendance.WorkRecordResponse{}, fmt.Errorf("failed to update record: %w", err)
	}

	return toResponse(*record), nil
}

func (s *WorkRecordServiceImpl) Backfill(ctx context.Context, req attendance.BackfillRequest) (attendance.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WorkRecordResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	record, err := s.recordRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return attendance.WorkRecordResponse{}, fmt.Errorf("failed to look up record: %w", err)
	}

	creating := record == nil
	if creating {
		record = &attendance.WorkRecord{
			EmployeeID: req.EmployeeID,
			Date:       date,
		}
	}

	if req.CheckInTime != nil {
		ts, _ := validator.IsValidDateTime(*req.CheckInTime)
		if record.CheckIn == nil {
			record.CheckIn = &attendance.CheckIn{}
		}
		record.CheckIn.Timestamp = ts
	}
	if req.WorkType != nil && record.CheckIn != nil {
		record.CheckIn.WorkType = attendance.WorkType(*req.WorkType)
	}
	if req.CheckOutTime != nil {
		ts, _ := validator.IsValidDateTime(*req.CheckOutTime)
		if record.CheckOut == nil {
			record.CheckOut = &attendance.CheckOut{}
		}
		record.CheckOut.Timestamp = ts
	}
	if req.Overtime != nil {
		record.Overtime = req.Overtime
	}

	switch {
	case req.Status != nil:
		record.Status = attendance.Status(*req.Status)
	case record.CheckIn != nil && record.CheckOut != nil:
		record.Status = attendance.StatusCompleted
	case record.CheckIn != nil:
		record.Status = attendance.StatusCheckedIn
	default:
		record.Status = attendance.StatusReportOnly
	}

	if creating {
		created, err := s.recordRepo.Create(ctx, *record)
		if err != nil {
			return attendance.WorkRecordResponse{}, fmt.Errorf("failed to create record: %w", err)
		}
		record = &created
	} else {
		if err := s.recordRepo.Update(ctx, *record); err != nil {
			return attendance.WorkRecordResponse{}, fmt.Errorf("failed to update record: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "work record backfilled",
		slog.String("employee_id", req.EmployeeID),
		slog.String("date", req.Date),
	)

	return toResponse(*record), nil
}

func (s *WorkRecordServiceImpl) GetMyRecords(ctx context.Context, filter attendance.RangeFilter) ([]attendance.WorkRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(filter.StartDate)
	end, _ := validator.IsValidDate(filter.EndDate)

	records, err := s.recordRepo.ListEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	responses := make([]attendance.WorkRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func toResponse(rec attendance.WorkRecord) attendance.WorkRecordResponse {
	resp := attendance.WorkRecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       calendar.DateKey(rec.Date),
		Status:     string(rec.Status),
		Reports:    rec.Reports,
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	if rec.CheckIn != nil && !rec.CheckIn.Timestamp.IsZero() {
		ts := rec.CheckIn.Timestamp.Format(time.RFC3339)
		wt := string(rec.CheckIn.WorkType)
		resp.CheckInTime = &ts
		resp.WorkType = &wt
	}
	if rec.CheckOut != nil && !rec.CheckOut.Timestamp.IsZero() {
		ts := rec.CheckOut.Timestamp.Format(time.RFC3339)
		resp.CheckOutTime = &ts
	}

	if rec.HasCompleteTimes() {
		wh := payroll.ComputeWorkHours(rec.CheckIn.Timestamp, rec.CheckOut.Timestamp)
		overtime := wh.Overtime
		if rec.Overtime != nil {
			overtime = *rec.Overtime
		}
		resp.RegularHours = &wh.Regular
		resp.OvertimeHours = &overtime
	} else if rec.Overtime != nil {
		resp.OvertimeHours = rec.Overtime
	}

	return resp
}
