package employee

import "context"

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	Get(ctx context.Context, id string) (EmployeeResponse, error)

	List(ctx context.Context) ([]EmployeeResponse, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
