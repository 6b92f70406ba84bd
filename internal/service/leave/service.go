package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eakathit/TimeTracker/internal/domain/calendar"
	"github.com/eakathit/TimeTracker/internal/domain/leave"
	"github.com/eakathit/TimeTracker/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRequestRepository
	logger    *slog.Logger
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository, logger *slog.Logger) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		logger:    logger,
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

func (l *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := l.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID:   employeeID,
		LeaveType:    leave.LeaveType(req.LeaveType),
		DurationType: leave.DurationType(req.DurationType),
		StartDate:    start,
		EndDate:      end,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       req.Reason,
		Status:       leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	l.logger.InfoContext(ctx, "leave request submitted",
		slog.String("employee_id", employeeID),
		slog.String("leave_type", req.LeaveType),
		slog.String("start_date", req.StartDate),
	)

	return toResponse(created), nil
}

func (l *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	approverID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := l.leaveRepo.UpdateStatus(ctx, id, leave.StatusApproved, approverID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	l.logger.InfoContext(ctx, "leave request approved",
		slog.String("request_id", id),
		slog.String("approved_by", approverID),
	)

	return toResponse(request), nil
}

func (l *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	approverID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := l.leaveRepo.UpdateStatus(ctx, req.ID, leave.StatusRejected, approverID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(request), nil
}

func (l *LeaveServiceImpl) GetMyRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toResponses(requests), nil
}

func (l *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	return toResponses(requests), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses
}

func toResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		LeaveType:    string(req.LeaveType),
		DurationType: string(req.DurationType),
		StartDate:    calendar.DateKey(req.StartDate),
		EndDate:      calendar.DateKey(req.EndDate),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       req.Reason,
		Status:       string(req.Status),
		ApprovedBy:   req.ApprovedBy,
	}
	if req.EmployeeName != nil {
		resp.EmployeeName = *req.EmployeeName
	}
	return resp
}
