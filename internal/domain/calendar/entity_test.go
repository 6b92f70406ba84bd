package calendar

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassifyDay(t *testing.T) {
	rs := NewRuleSet(
		[]string{"2024-06-03", "2024-06-08"},          // Monday and Saturday holidays
		[]string{"2024-06-08", "2024-06-15"},          // both Saturdays designated working
	)

	cases := []struct {
		name string
		day  string
		want DayType
	}{
		{"ordinary weekday", "2024-06-04", DayTypeWorkDay},
		{"weekday holiday", "2024-06-03", DayTypeHoliday},
		{"sunday", "2024-06-09", DayTypeRegularWeekend},
		{"plain saturday", "2024-06-01", DayTypeRegularWeekend},
		{"working saturday", "2024-06-15", DayTypeWorkingSaturday},
		{"holiday beats working saturday", "2024-06-08", DayTypeHoliday},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyDay(date(c.day), rs); got != c.want {
				t.Errorf("ClassifyDay(%s) = %s, want %s", c.day, got, c.want)
			}
		})
	}
}

func TestClassifyDayExhaustive(t *testing.T) {
	// Every date resolves to exactly one of the four day types.
	rs := NewRuleSet([]string{"2024-06-05"}, []string{"2024-06-01"})
	valid := map[DayType]bool{
		DayTypeHoliday:         true,
		DayTypeRegularWeekend:  true,
		DayTypeWorkingSaturday: true,
		DayTypeWorkDay:         true,
	}

	for d := date("2024-05-20"); !d.After(date("2024-06-20")); d = d.AddDate(0, 0, 1) {
		if !valid[ClassifyDay(d, rs)] {
			t.Fatalf("ClassifyDay(%s) returned unknown day type", DateKey(d))
		}
	}
}

func TestIsWorkingDay(t *testing.T) {
	cases := []struct {
		dt   DayType
		want bool
	}{
		{DayTypeWorkDay, true},
		{DayTypeWorkingSaturday, true},
		{DayTypeHoliday, false},
		{DayTypeRegularWeekend, false},
	}
	for _, c := range cases {
		if got := c.dt.IsWorkingDay(); got != c.want {
			t.Errorf("IsWorkingDay(%s) = %v, want %v", c.dt, got, c.want)
		}
	}
}
