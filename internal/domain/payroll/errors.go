package payroll

import "errors"

var (
	ErrInvalidRange = errors.New("end date must not be before start date")
)
