package employee

import (
	"github.com/eakathit/TimeTracker/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FullName   string  `json:"full_name"`
	Department string  `json:"department"`
	PayType    string  `json:"pay_type"`
	Role       string  `json:"role"`
	HourlyRate *string `json:"hourly_rate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsInSlice(r.PayType, []string{string(PayTypeMonthly), string(PayTypeDaily)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_type",
			Message: "pay_type must be one of: monthly, daily",
		})
	}

	if r.Role != "" && !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name,omitempty"`
	Department *string `json:"department,omitempty"`
	PayType    *string `json:"pay_type,omitempty"`
	Role       *string `json:"role,omitempty"`
	HourlyRate *string `json:"hourly_rate,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PayType != nil && !validator.IsInSlice(*r.PayType, []string{string(PayTypeMonthly), string(PayTypeDaily)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_type",
			Message: "pay_type must be one of: monthly, daily",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleAdmin), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Department string  `json:"department"`
	PayType    string  `json:"pay_type"`
	Role       string  `json:"role"`
	HourlyRate *string `json:"hourly_rate,omitempty"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
