package calendar

import "context"

// RuleSetRepository persists the process-wide calendar rule set.
// The rule set is a singleton row; add/remove operations are set
// membership updates.
type RuleSetRepository interface {
	Get(ctx context.Context) (RuleSet, error)

	AddHoliday(ctx context.Context, dateKey string) error
	RemoveHoliday(ctx context.Context, dateKey string) error

	AddWorkingSaturday(ctx context.Context, dateKey string) error
	RemoveWorkingSaturday(ctx context.Context, dateKey string) error
}
