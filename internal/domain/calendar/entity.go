package calendar

import "time"

// RuleSet is the organization-wide calendar: explicit holidays plus
// Saturdays that are designated working days. Keys are ISO dates
// (YYYY-MM-DD) in the organization's local timezone.
type RuleSet struct {
	Holidays         map[string]struct{}
	WorkingSaturdays map[string]struct{}
}

func NewRuleSet(holidays, workingSaturdays []string) RuleSet {
	rs := RuleSet{
		Holidays:         make(map[string]struct{}, len(holidays)),
		WorkingSaturdays: make(map[string]struct{}, len(workingSaturdays)),
	}
	for _, d := range holidays {
		rs.Holidays[d] = struct{}{}
	}
	for _, d := range workingSaturdays {
		rs.WorkingSaturdays[d] = struct{}{}
	}
	return rs
}

type DayType string

const (
	DayTypeHoliday         DayType = "holiday"
	DayTypeRegularWeekend  DayType = "regular_weekend"
	DayTypeWorkingSaturday DayType = "working_saturday"
	DayTypeWorkDay         DayType = "work_day"
)

// IsWorkingDay reports whether hours on this day earn regular pay and
// 1.5x overtime rather than holiday-rate pay.
func (d DayType) IsWorkingDay() bool {
	return d == DayTypeWorkDay || d == DayTypeWorkingSaturday
}

// DateKey formats a date as the ISO key used throughout the rule set
// and the leave index.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClassifyDay resolves the type of a calendar date. Holiday membership
// overrides everything else; a Saturday counts as a weekend unless it
// is designated a working Saturday.
func ClassifyDay(date time.Time, rs RuleSet) DayType {
	key := DateKey(date)

	if _, ok := rs.Holidays[key]; ok {
		return DayTypeHoliday
	}

	switch date.Weekday() {
	case time.Sunday:
		return DayTypeRegularWeekend
	case time.Saturday:
		if _, ok := rs.WorkingSaturdays[key]; ok {
			return DayTypeWorkingSaturday
		}
		return DayTypeRegularWeekend
	default:
		return DayTypeWorkDay
	}
}
