package calendar

import "errors"

var (
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
	ErrNotSaturday = errors.New("working saturday date must fall on a saturday")
)
