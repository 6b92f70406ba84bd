package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eakathit/TimeTracker/internal/domain/employee"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, logger *slog.Logger) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	role := employee.Role(req.Role)
	if req.Role == "" {
		role = employee.RoleEmployee
	}

	emp := employee.Employee{
		Email:        req.Email,
		PasswordHash: &hashed,
		FullName:     req.FullName,
		Department:   req.Department,
		PayType:      employee.PayType(req.PayType),
		Role:         role,
		IsActive:     true,
	}

	if req.HourlyRate != nil {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid hourly rate: %w", err)
		}
		emp.HourlyRate = &rate
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.logger.InfoContext(ctx, "employee created",
		slog.String("employee_id", created.ID),
		slog.String("department", created.Department),
	)

	return toResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.PayType != nil {
		emp.PayType = employee.PayType(*req.PayType)
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.HourlyRate != nil {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid hourly rate: %w", err)
		}
		emp.HourlyRate = &rate
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:         emp.ID,
		Email:      emp.Email,
		FullName:   emp.FullName,
		Department: emp.Department,
		PayType:    string(emp.PayType),
		Role:       string(emp.Role),
		IsActive:   emp.IsActive,
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  emp.UpdatedAt.Format(time.RFC3339),
	}
	if emp.HourlyRate != nil {
		rate := emp.HourlyRate.String()
		resp.HourlyRate = &rate
	}
	return resp
}
