package payroll

import (
	"testing"
	"time"

	"github.com/eakathit/TimeTracker/internal/domain/attendance"
	"github.com/eakathit/TimeTracker/internal/domain/calendar"
	"github.com/eakathit/TimeTracker/internal/domain/employee"
	"github.com/eakathit/TimeTracker/internal/domain/leave"
	"github.com/eakathit/TimeTracker/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyEmployee(id, name string) employee.Employee {
	return employee.Employee{
		ID:       id,
		FullName: name,
		PayType:  employee.PayTypeMonthly,
	}
}

func completedRecord(empID string, date time.Time, inHour, inMin, outHour, outMin int) attendance.WorkRecord {
	y, m, d := date.Date()
	return attendance.WorkRecord{
		EmployeeID: empID,
		Date:       date,
		Status:     attendance.StatusCompleted,
		CheckIn: &attendance.CheckIn{
			Timestamp: time.Date(y, m, d, inHour, inMin, 0, 0, time.UTC),
			WorkType:  attendance.WorkTypeInFactory,
		},
		CheckOut: &attendance.CheckOut{
			Timestamp: time.Date(y, m, d, outHour, outMin, 0, 0, time.UTC),
		},
	}
}

func recordMap(records ...attendance.WorkRecord) map[string]map[string]attendance.WorkRecord {
	m := make(map[string]map[string]attendance.WorkRecord)
	for _, rec := range records {
		byDate, ok := m[rec.EmployeeID]
		if !ok {
			byDate = make(map[string]attendance.WorkRecord)
			m[rec.EmployeeID] = byDate
		}
		byDate[calendar.DateKey(rec.Date)] = rec
	}
	return m
}

func TestAggregateInvalidRange(t *testing.T) {
	_, err := Aggregate(AggregateParams{
		Start: day(2024, 6, 30),
		End:   day(2024, 6, 1),
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidRange)
}

func TestAggregatePartition(t *testing.T) {
	// June 2024: 20 weekdays, 5 Saturdays, 5 Sundays.
	emp := monthlyEmployee("emp-1", "Alice")

	records := recordMap(
		completedRecord("emp-1", day(2024, 6, 11), 8, 30, 17, 30),
		attendance.WorkRecord{
			EmployeeID: "emp-1",
			Date:       day(2024, 6, 12),
			Status:     attendance.StatusCheckedIn,
			CheckIn: &attendance.CheckIn{
				Timestamp: time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC),
			},
		},
	)

	idx := BuildLeaveIndex([]leave.LeaveRequest{
		{
			EmployeeID:   "emp-1",
			DurationType: leave.DurationFullDay,
			StartDate:    day(2024, 6, 10),
			EndDate:      day(2024, 6, 10),
		},
	}, day(2024, 6, 1), day(2024, 6, 30))

	got, err := Aggregate(AggregateParams{
		Employees: []employee.Employee{emp},
		Records:   records,
		Leave:     idx,
		Rules:     calendar.NewRuleSet(nil, nil),
		Start:     day(2024, 6, 1),
		End:       day(2024, 6, 30),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)

	sum := got[0]
	assert.Equal(t, 2, sum.WorkedDays)
	assert.Equal(t, 1, sum.LeaveDays)
	assert.Equal(t, 17, sum.AbsentDays)
	assert.Equal(t, 10, sum.IdleDays)

	total := sum.WorkedDays + sum.LeaveDays + sum.AbsentDays + sum.IdleDays
	assert.Equal(t, 30, total, "day counters must partition the range")
}

func TestAggregateIdempotent(t *testing.T) {
	params := AggregateParams{
		Employees: []employee.Employee{monthlyEmployee("emp-1", "Alice")},
		Records:   recordMap(completedRecord("emp-1", day(2024, 6, 11), 8, 30, 18, 30)),
		Leave:     make(LeaveIndex),
		Rules:     calendar.NewRuleSet(nil, nil),
		Start:     day(2024, 6, 1),
		End:       day(2024, 6, 30),
	}

	first, err := Aggregate(params)
	require.NoError(t, err)
	second, err := Aggregate(params)
	require.NoError(t, err)

	assert.Equal(t, first, second, "two passes over identical inputs differ")
}

func TestAggregateFullDaySickLeave(t *testing.T) {
	idx := BuildLeaveIndex([]leave.LeaveRequest{
		{
			EmployeeID:   "emp-1",
			LeaveType:    leave.LeaveTypeSick,
			DurationType: leave.DurationFullDay,
			StartDate:    day(2024, 6, 10),
			EndDate:      day(2024, 6, 10),
		},
	}, day(2024, 6, 10), day(2024, 6, 10))

	got, err := Aggregate(AggregateParams{
		Employees: []employee.Employee{monthlyEmployee("emp-1", "Alice")},
		Records:   nil,
		Leave:     idx,
		Rules:     calendar.NewRuleSet(nil, nil),
		Start:     day(2024, 6, 10),
		End:       day(2024, 6, 10),
	})
	require.NoError(t, err)

	sum := got[0]
	assert.Equal(t, 1, sum.LeaveDays)
	assert.Zero(t, sum.WorkedDays)
	assert.Zero(t, sum.AbsentDays)
}

func TestAggregateLateness(t *testing.T) {
	// Monday, 08:45 check-in.
	record := completedRecord("emp-1", day(2024, 6, 10), 8, 45, 17, 30)

	base := AggregateParams{
		Employees: []employee.Employee{monthlyEmployee("emp-1", "Alice")},
		Records:   recordMap(record),
		Rules:     calendar.NewRuleSet(nil, nil),
		Start:     day(2024, 6, 10),
		End:       day(2024, 6, 10),
	}

	t.Run("late without leave", func(t *testing.T) {
		params := base
		params.Leave = make(LeaveIndex)

		got, err := Aggregate(params)
		require.NoError(t, err)
		assert.Equal(t, 1, got[0].LateDays)
	})

	t.Run("morning hourly leave suppresses lateness", func(t *testing.T) {
		params := base
		params.Leave = BuildLeaveIndex([]leave.LeaveRequest{
			{
				EmployeeID:   "emp-1",
				DurationType: leave.DurationHourly,
				StartDate:    day(2024, 6, 10),
				EndDate:      day(2024, 6, 10),
				StartTime:    strPtr("08:00"),
				EndTime:      strPtr("09:00"),
			},
		}, day(2024, 6, 10), day(2024, 6, 10))

		got, err := Aggregate(params)
		require.NoError(t, err)
		sum := got[0]
		assert.Zero(t, sum.LateDays)
		// Hourly leave does not consume a leave day; the day still counts
		// as worked.
		assert.Zero(t, sum.LeaveDays)
		assert.Equal(t, 1, sum.WorkedDays)
	})
}

func TestAggregateOvertimeOverride(t *testing.T) {
	// 18:30 checkout computes 1.0h OT.
	record := completedRecord("emp-1", day(2024, 6, 10), 8, 30, 18, 30)

	run := func(t *testing.T, override *float64) payroll.EmployeeSummary {
		t.Helper()
		rec := record
		rec.Overtime = override

		got, err := Aggregate(AggregateParams{
			Employees: []employee.Employee{monthlyEmployee("emp-1", "Alice")},
			Records:   recordMap(rec),
			Leave:     make(LeaveIndex),
			Rules:     calendar.NewRuleSet(nil, nil),
			Start:     day(2024, 6, 10),
			End:       day(2024, 6, 10),
		})
		require.NoError(t, err)
		return got[0]
	}

	t.Run("absent override falls back to computed", func(t *testing.T) {
		assert.Equal(t, 1.0, run(t, nil).OvertimeHours15x)
	})

	t.Run("override wins even when zero", func(t *testing.T) {
		zero := 0.0
		assert.Zero(t, run(t, &zero).OvertimeHours15x)
	})

	t.Run("accumulated override replaces computed", func(t *testing.T) {
		credited := 2.5
		assert.Equal(t, 2.5, run(t, &credited).OvertimeHours15x)
	})
}

func TestAggregateHolidayRouting(t *testing.T) {
	rules := calendar.NewRuleSet([]string{"2024-06-10"}, nil)
	record := completedRecord("emp-1", day(2024, 6, 10), 8, 30, 18, 30)

	run := func(t *testing.T, payType employee.PayType) payroll.EmployeeSummary {
		t.Helper()
		emp := monthlyEmployee("emp-1", "Alice")
		emp.PayType = payType

		got, err := Aggregate(AggregateParams{
			Employees: []employee.Employee{emp},
			Records:   recordMap(record),
			Leave:     make(LeaveIndex),
			Rules:     rules,
			Start:     day(2024, 6, 10),
			End:       day(2024, 6, 10),
		})
		require.NoError(t, err)
		return got[0]
	}

	t.Run("monthly staff earn 1x", func(t *testing.T) {
		sum := run(t, employee.PayTypeMonthly)
		assert.Equal(t, 8.0, sum.HolidayHours1x)
		assert.Zero(t, sum.HolidayHours2x)
		assert.Equal(t, 1.0, sum.OvertimeHours3x)
		assert.Zero(t, sum.RegularHours, "working-day buckets received holiday hours")
		assert.Zero(t, sum.OvertimeHours15x, "working-day buckets received holiday hours")
	})

	t.Run("daily staff earn 2x", func(t *testing.T) {
		sum := run(t, employee.PayTypeDaily)
		assert.Zero(t, sum.HolidayHours1x)
		assert.Equal(t, 8.0, sum.HolidayHours2x)
	})

	t.Run("no lateness on holidays", func(t *testing.T) {
		assert.Zero(t, run(t, employee.PayTypeMonthly).LateDays)
	})
}

func TestAggregateIncompleteRecord(t *testing.T) {
	got, err := Aggregate(AggregateParams{
		Employees: []employee.Employee{monthlyEmployee("emp-1", "Alice")},
		Records: recordMap(attendance.WorkRecord{
			EmployeeID: "emp-1",
			Date:       day(2024, 6, 10),
			Status:     attendance.StatusReportOnly,
			Reports:    []attendance.Report{{Project: "maintenance", Hours: 4}},
		}),
		Leave: make(LeaveIndex),
		Rules: calendar.NewRuleSet(nil, nil),
		Start: day(2024, 6, 10),
		End:   day(2024, 6, 10),
	})
	require.NoError(t, err)

	sum := got[0]
	assert.Equal(t, 1, sum.WorkedDays)
	assert.Equal(t, 1, sum.ReportedDays)
	assert.Zero(t, sum.RegularHours, "incomplete record contributed hours")
	assert.Zero(t, sum.OvertimeHours15x, "incomplete record contributed hours")
}

func TestAggregateSortedByName(t *testing.T) {
	got, err := Aggregate(AggregateParams{
		Employees: []employee.Employee{
			monthlyEmployee("emp-2", "Chris"),
			monthlyEmployee("emp-3", "Alice"),
			monthlyEmployee("emp-1", "Bob"),
		},
		Leave: make(LeaveIndex),
		Rules: calendar.NewRuleSet(nil, nil),
		Start: day(2024, 6, 10),
		End:   day(2024, 6, 10),
	})
	require.NoError(t, err)

	var names []string
	for _, s := range got {
		names = append(names, s.FullName)
	}
	assert.Equal(t, []string{"Alice", "Bob", "Chris"}, names)
}
