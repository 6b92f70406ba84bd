package calendar

import "context"

// RuleSetService defines admin operations on the calendar rule set.
type RuleSetService interface {
	Get(ctx context.Context) (RuleSetResponse, error)

	AddHoliday(ctx context.Context, req ModifyDateRequest) (RuleSetResponse, error)
	RemoveHoliday(ctx context.Context, req ModifyDateRequest) (RuleSetResponse, error)

	AddWorkingSaturday(ctx context.Context, req ModifyDateRequest) (RuleSetResponse, error)
	RemoveWorkingSaturday(ctx context.Context, req ModifyDateRequest) (RuleSetResponse, error)
}
