package payroll

import (
	"sort"
	"time"

	"github.com/eakathit/TimeTracker/internal/domain/attendance"
	"github.com/eakathit/TimeTracker/internal/domain/calendar"
	"github.com/eakathit/TimeTracker/internal/domain/employee"
	"github.com/eakathit/TimeTracker/internal/domain/leave"
	"github.com/eakathit/TimeTracker/internal/domain/payroll"
)

// AggregateParams carries the fully-materialized inputs for one
// aggregation pass. Records are keyed by employee ID, then ISO date.
type AggregateParams struct {
	Employees []employee.Employee
	Records   map[string]map[string]attendance.WorkRecord
	Leave     LeaveIndex
	Rules     calendar.RuleSet
	Start     time.Time
	End       time.Time
}

// Aggregate walks every (employee, date) cell of the range and
// accumulates per-employee payroll totals. Each cell takes exactly one
// branch, in strict precedence order:
//
//  1. non-hourly leave entry: one leave day, attendance ignored;
//  2. work record present: one worked day (plus a reported day when any
//     report is attached), hours routed by day type when both
//     timestamps exist, lateness checked against the hourly-leave
//     shifted threshold;
//  3. working day with nothing: one absent day;
//  4. otherwise: an idle non-working day.
//
// WorkedDays + LeaveDays + AbsentDays + IdleDays therefore partitions
// the range exactly. Incomplete records degrade to day counts only;
// the sole hard failure is an inverted range.
func Aggregate(p AggregateParams) ([]payroll.EmployeeSummary, error) {
	if p.End.Before(p.Start) {
		return nil, payroll.ErrInvalidRange
	}

	employees := make([]employee.Employee, len(p.Employees))
	copy(employees, p.Employees)
	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].FullName < employees[j].FullName
	})

	summaries := make([]payroll.EmployeeSummary, 0, len(employees))

	for _, emp := range employees {
		sum := payroll.EmployeeSummary{
			EmployeeID: emp.ID,
			FullName:   emp.FullName,
			Department: emp.Department,
			PayType:    emp.PayType,
		}

		records := p.Records[emp.ID]

		for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
			key := calendar.DateKey(d)
			dayType := calendar.ClassifyDay(d, p.Rules)

			info, onLeave := p.Leave.Get(emp.ID, key)
			if onLeave && info.DurationType != leave.DurationHourly {
				sum.LeaveDays++
				continue
			}

			rec, present := records[key]
			if present {
				aggregateRecord(&sum, emp, rec, dayType, p.Leave, key)
				continue
			}

			if dayType.IsWorkingDay() {
				sum.AbsentDays++
				continue
			}

			sum.IdleDays++
		}

		summaries = append(summaries, sum)
	}

	return summaries, nil
}

// aggregateRecord applies one work record to the running summary.
func aggregateRecord(
	sum *payroll.EmployeeSummary,
	emp employee.Employee,
	rec attendance.WorkRecord,
	dayType calendar.DayType,
	leaveIdx LeaveIndex,
	dateKey string,
) {
	sum.WorkedDays++
	if len(rec.Reports) > 0 {
		sum.ReportedDays++
	}

	if rec.HasCompleteTimes() {
		wh := ComputeWorkHours(rec.CheckIn.Timestamp, rec.CheckOut.Timestamp)

		// A recorded override wins over the computed value, even when
		// it is zero; OT approvals accumulate into it upstream.
		overtime := wh.Overtime
		if rec.Overtime != nil {
			overtime = *rec.Overtime
		}

		if dayType.IsWorkingDay() {
			sum.RegularHours += wh.Regular
			sum.OvertimeHours15x += overtime
		} else {
			if emp.PayType == employee.PayTypeMonthly {
				sum.HolidayHours1x += wh.Regular
			} else {
				sum.HolidayHours2x += wh.Regular
			}
			sum.OvertimeHours3x += overtime
		}
	}

	if dayType.IsWorkingDay() && rec.CheckIn != nil && !rec.CheckIn.Timestamp.IsZero() {
		checkInMinutes := rec.CheckIn.Timestamp.Hour()*60 + rec.CheckIn.Timestamp.Minute()
		if checkInMinutes > leaveIdx.EffectiveLatenessThreshold(emp.ID, dateKey) {
			sum.LateDays++
		}
	}
}
