package overtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eakathit/TimeTracker/internal/domain/attendance"
	"github.com/eakathit/TimeTracker/internal/domain/calendar"
	"github.com/eakathit/TimeTracker/internal/domain/overtime"
	"github.com/eakathit/TimeTracker/internal/pkg/database"
	"github.com/eakathit/TimeTracker/internal/pkg/validator"
	"github.com/eakathit/TimeTracker/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type OvertimeServiceImpl struct {
	db           *database.DB
	overtimeRepo overtime.OvertimeRequestRepository
	recordRepo   attendance.WorkRecordRepository
	logger       *slog.Logger
}

func NewOvertimeService(
	db *database.DB,
	overtimeRepo overtime.OvertimeRequestRepository,
	recordRepo attendance.WorkRecordRepository,
	logger *slog.Logger,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		db:           db,
		overtimeRepo: overtimeRepo,
		recordRepo:   recordRepo,
		logger:       logger,
	}
}

func claimsFromContext(ctx context.Context) (employeeID string, err error) {
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

func (o *OvertimeServiceImpl) Create(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := o.overtimeRepo.Create(ctx, overtime.OvertimeRequest{
		EmployeeID: employeeID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
		Status:     overtime.StatusPending,
	})
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	o.logger.InfoContext(ctx, "overtime request submitted",
		slog.String("employee_id", employeeID),
		slog.String("date", req.Date),
	)

	return toResponse(created), nil
}

// Approve transitions the request and credits the work record in one
// transaction. The conditional status update makes re-approval
// impossible, so the increment is applied at most once per request.
func (o *OvertimeServiceImpl) Approve(ctx context.Context, id string) (overtime.OvertimeRequestResponse, error) {
	approverID, err := claimsFromContext(ctx)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	request, err := o.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	startMin := validator.ClockToMinutes(request.StartTime)
	endMin := validator.ClockToMinutes(request.EndTime)
	hours := request.CreditHours(startMin, endMin)

	err = postgresql.WithTransaction(ctx, o.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := o.overtimeRepo.UpdateStatus(txCtx, id, overtime.StatusApproved, approverID); err != nil {
			return err
		}

		if hours <= 0 {
			// Malformed or inverted window: the request is still
			// approved, but nothing is credited.
			o.logger.WarnContext(ctx, "overtime request approved without credit",
				slog.String("request_id", id),
				slog.String("start_time", request.StartTime),
				slog.String("end_time", request.EndTime),
			)
			return nil
		}

		dateKey := calendar.DateKey(request.Date)
		record, err := o.recordRepo.GetByEmployeeAndDate(txCtx, request.EmployeeID, dateKey)
		if err != nil {
			return fmt.Errorf("failed to look up work record: %w", err)
		}

		if record == nil {
			_, err := o.recordRepo.Create(txCtx, attendance.WorkRecord{
				EmployeeID: request.EmployeeID,
				Date:       request.Date,
				Status:     attendance.StatusReportOnly,
				Overtime:   &hours,
			})
			if err != nil {
				return fmt.Errorf("failed to create work record for credit: %w", err)
			}
			return nil
		}

		if err := o.recordRepo.IncrementOvertime(txCtx, record.ID, hours); err != nil {
			return fmt.Errorf("failed to credit overtime: %w", err)
		}
		return nil
	})
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	o.logger.InfoContext(ctx, "overtime request approved",
		slog.String("request_id", id),
		slog.Float64("credited_hours", hours),
	)

	approved, err := o.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	resp := toResponse(approved)
	resp.CreditedHours = &hours
	return resp, nil
}

func (o *OvertimeServiceImpl) Reject(ctx context.Context, id string) (overtime.OvertimeRequestResponse, error) {
	approverID, err := claimsFromContext(ctx)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	if err := o.overtimeRepo.UpdateStatus(ctx, id, overtime.StatusRejected, approverID); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	request, err := o.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	return toResponse(request), nil
}

func (o *OvertimeServiceImpl) GetMyRequests(ctx context.Context) ([]overtime.OvertimeRequestResponse, error) {
	employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := o.overtimeRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}

	return toResponses(requests), nil
}

func (o *OvertimeServiceImpl) ListPending(ctx context.Context) ([]overtime.OvertimeRequestResponse, error) {
	requests, err := o.overtimeRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending overtime requests: %w", err)
	}

	return toResponses(requests), nil
}

func toResponses(requests []overtime.OvertimeRequest) []overtime.OvertimeRequestResponse {
	responses := make([]overtime.OvertimeRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses
}

func toResponse(req overtime.OvertimeRequest) overtime.OvertimeRequestResponse {
	resp := overtime.OvertimeRequestResponse{
		ID:         req.ID,
		EmployeeID: req.EmployeeID,
		Date:       calendar.DateKey(req.Date),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
		Status:     string(req.Status),
		ApprovedBy: req.ApprovedBy,
	}
	if req.EmployeeName != nil {
		resp.EmployeeName = *req.EmployeeName
	}
	return resp
}
