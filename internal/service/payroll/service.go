package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eakathit/TimeTracker/internal/domain/attendance"
	"github.com/eakathit/TimeTracker/internal/domain/calendar"
	"github.com/eakathit/TimeTracker/internal/domain/employee"
	"github.com/eakathit/TimeTracker/internal/domain/leave"
	"github.com/eakathit/TimeTracker/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	recordRepo   attendance.WorkRecordRepository
	leaveRepo    leave.LeaveRequestRepository
	calendarRepo calendar.RuleSetRepository
	logger       *slog.Logger
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	recordRepo attendance.WorkRecordRepository,
	leaveRepo leave.LeaveRequestRepository,
	calendarRepo calendar.RuleSetRepository,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		recordRepo:   recordRepo,
		leaveRepo:    leaveRepo,
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

func (s *PayrollServiceImpl) Summary(ctx context.Context, query payroll.SummaryQuery) ([]payroll.SummaryRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", query.StartDate)
	end, _ := time.Parse("2006-01-02", query.EndDate)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	if query.EmployeeID != "" {
		filtered := employees[:0]
		for _, emp := range employees {
			if emp.ID == query.EmployeeID {
				filtered = append(filtered, emp)
			}
		}
		if len(filtered) == 0 {
			return nil, employee.ErrEmployeeNotFound
		}
		employees = filtered
	}

	records, err := s.fetchRecords(ctx, start, end)
	if err != nil {
		return nil, err
	}

	// The store only expresses start_date <= end; BuildLeaveIndex
	// re-checks the other side in memory.
	approved, err := s.leaveRepo.ListApprovedStartingBefore(ctx, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}

	rules, err := s.calendarRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar rules: %w", err)
	}

	summaries, err := Aggregate(AggregateParams{
		Employees: employees,
		Records:   records,
		Leave:     BuildLeaveIndex(approved, start, end),
		Rules:     rules,
		Start:     start,
		End:       end,
	})
	if err != nil {
		return nil, err
	}

	rates := make(map[string]decimal.Decimal)
	for _, emp := range employees {
		if emp.HourlyRate != nil {
			rates[emp.ID] = *emp.HourlyRate
		}
	}

	rows := BuildRows(summaries, RowFilter{Name: query.Name, Department: query.Department}, rates)

	s.logger.InfoContext(ctx, "payroll summary computed",
		slog.String("start", query.StartDate),
		slog.String("end", query.EndDate),
		slog.Int("employees", len(rows)),
	)

	return rows, nil
}

func (s *PayrollServiceImpl) Export(ctx context.Context, query payroll.SummaryQuery) ([][]string, error) {
	rows, err := s.Summary(ctx, query)
	if err != nil {
		return nil, err
	}
	return ExportTable(rows), nil
}

// fetchRecords loads every work record in the range and keys it by
// employee ID, then ISO date, the shape the aggregator consumes.
func (s *PayrollServiceImpl) fetchRecords(ctx context.Context, start, end time.Time) (map[string]map[string]attendance.WorkRecord, error) {
	list, err := s.recordRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list work records: %w", err)
	}

	records := make(map[string]map[string]attendance.WorkRecord)
	for _, rec := range list {
		byDate, ok := records[rec.EmployeeID]
		if !ok {
			byDate = make(map[string]attendance.WorkRecord)
			records[rec.EmployeeID] = byDate
		}
		byDate[calendar.DateKey(rec.Date)] = rec
	}
	return records, nil
}
