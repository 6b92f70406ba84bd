package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListActive returns active employees ordered by full name ascending,
	// the order the payroll summary preserves.
	ListActive(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error
}
