package calendar

import (
	"time"

	"github.com/eakathit/TimeTracker/internal/pkg/validator"
)

type ModifyDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

func (r *ModifyDateRequest) Validate() error {
	if _, ok := validator.IsValidDate(r.Date); !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return nil
}

// ValidateSaturday additionally requires the date to fall on a Saturday.
func (r *ModifyDateRequest) ValidateSaturday() error {
	d, ok := validator.IsValidDate(r.Date)
	if !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	if d.Weekday() != time.Saturday {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must fall on a saturday",
		}}
	}
	return nil
}

type RuleSetResponse struct {
	Holidays         []string `json:"holidays"`
	WorkingSaturdays []string `json:"working_saturdays"`
}
