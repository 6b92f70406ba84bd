package payroll

import (
	"time"

	"github.com/eakathit/TimeTracker/internal/domain/calendar"
	"github.com/eakathit/TimeTracker/internal/domain/leave"
	"github.com/eakathit/TimeTracker/internal/pkg/validator"
)

// latenessThresholdMinutes is 08:30 in minutes since midnight; check-ins
// after this are flagged late unless an hourly-leave entry covers them.
const latenessThresholdMinutes = 510

// LeaveInfo annotates one (employee, date) cell with approved leave.
type LeaveInfo struct {
	LeaveType    leave.LeaveType
	DurationType leave.DurationType
	StartTime    *string // HH:MM, hourly only
	EndTime      *string // HH:MM, hourly only
}

// LeaveIndex is a per-employee/per-date lookup of approved leave, keyed
// by employee ID and ISO date.
type LeaveIndex map[string]LeaveInfo

func leaveKey(employeeID, dateKey string) string {
	return employeeID + "|" + dateKey
}

// Get returns the leave entry for an (employee, date) cell, if any.
func (idx LeaveIndex) Get(employeeID, dateKey string) (LeaveInfo, bool) {
	info, ok := idx[leaveKey(employeeID, dateKey)]
	return info, ok
}

// BuildLeaveIndex expands approved leave requests into the per-date
// lookup. Full-day leave produces one entry per calendar date of the
// request; hourly leave produces exactly one entry at its start date,
// carrying the HH:MM window. Requests entirely outside [start, end] are
// skipped. When two entries land on the same cell the later one in the
// input wins.
func BuildLeaveIndex(approved []leave.LeaveRequest, start, end time.Time) LeaveIndex {
	idx := make(LeaveIndex)

	for _, req := range approved {
		if req.EndDate.Before(start) || req.StartDate.After(end) {
			continue
		}

		if req.DurationType == leave.DurationHourly {
			idx[leaveKey(req.EmployeeID, calendar.DateKey(req.StartDate))] = LeaveInfo{
				LeaveType:    req.LeaveType,
				DurationType: req.DurationType,
				StartTime:    req.StartTime,
				EndTime:      req.EndTime,
			}
			continue
		}

		for d := req.StartDate; !d.After(req.EndDate); d = d.AddDate(0, 0, 1) {
			idx[leaveKey(req.EmployeeID, calendar.DateKey(d))] = LeaveInfo{
				LeaveType:    req.LeaveType,
				DurationType: req.DurationType,
			}
		}
	}

	return idx
}

// EffectiveLatenessThreshold returns the minutes-since-midnight cutoff
// after which a check-in on the given day counts as late. Approved
// hourly leave whose window opens at or before 08:30 moves the cutoff
// to the leave's end time, so an employee on morning leave can check in
// when it ends without being flagged. The cutoff only ever moves
// later; malformed times leave it untouched.
func (idx LeaveIndex) EffectiveLatenessThreshold(employeeID, dateKey string) int {
	info, ok := idx.Get(employeeID, dateKey)
	if !ok || info.DurationType != leave.DurationHourly ||
		info.StartTime == nil || info.EndTime == nil {
		return latenessThresholdMinutes
	}

	startMin := validator.ClockToMinutes(*info.StartTime)
	endMin := validator.ClockToMinutes(*info.EndTime)
	if startMin < 0 || endMin < 0 || startMin > latenessThresholdMinutes {
		return latenessThresholdMinutes
	}

	if endMin > latenessThresholdMinutes {
		return endMin
	}
	return latenessThresholdMinutes
}
