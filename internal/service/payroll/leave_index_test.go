package payroll

import (
	"testing"
	"time"

	"github.com/eakathit/TimeTracker/internal/domain/leave"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestBuildLeaveIndexFullDayExpansion(t *testing.T) {
	idx := BuildLeaveIndex([]leave.LeaveRequest{
		{
			EmployeeID:   "emp-1",
			LeaveType:    leave.LeaveTypeAnnual,
			DurationType: leave.DurationFullDay,
			StartDate:    day(2024, 6, 10),
			EndDate:      day(2024, 6, 12),
		},
	}, day(2024, 6, 1), day(2024, 6, 30))

	for _, key := range []string{"2024-06-10", "2024-06-11", "2024-06-12"} {
		info, ok := idx.Get("emp-1", key)
		if !ok {
			t.Fatalf("missing entry for %s", key)
		}
		if info.DurationType != leave.DurationFullDay {
			t.Errorf("entry for %s has duration %s", key, info.DurationType)
		}
	}

	if _, ok := idx.Get("emp-1", "2024-06-13"); ok {
		t.Error("unexpected entry past the leave end date")
	}
	if _, ok := idx.Get("emp-2", "2024-06-10"); ok {
		t.Error("entry leaked to another employee")
	}
}

func TestBuildLeaveIndexHourlySingleEntry(t *testing.T) {
	idx := BuildLeaveIndex([]leave.LeaveRequest{
		{
			EmployeeID:   "emp-1",
			DurationType: leave.DurationHourly,
			StartDate:    day(2024, 6, 10),
			EndDate:      day(2024, 6, 10),
			StartTime:    strPtr("08:00"),
			EndTime:      strPtr("09:00"),
		},
	}, day(2024, 6, 1), day(2024, 6, 30))

	if len(idx) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(idx))
	}

	info, ok := idx.Get("emp-1", "2024-06-10")
	if !ok {
		t.Fatal("missing hourly entry at start date")
	}
	if info.StartTime == nil || *info.StartTime != "08:00" {
		t.Errorf("StartTime = %v", info.StartTime)
	}
	if info.EndTime == nil || *info.EndTime != "09:00" {
		t.Errorf("EndTime = %v", info.EndTime)
	}
}

func TestBuildLeaveIndexRangeFilter(t *testing.T) {
	idx := BuildLeaveIndex([]leave.LeaveRequest{
		{
			EmployeeID:   "emp-1",
			DurationType: leave.DurationFullDay,
			StartDate:    day(2024, 5, 1),
			EndDate:      day(2024, 5, 3),
		},
		{
			EmployeeID:   "emp-1",
			DurationType: leave.DurationFullDay,
			StartDate:    day(2024, 7, 1),
			EndDate:      day(2024, 7, 2),
		},
		{
			// Straddles the range start; kept.
			EmployeeID:   "emp-2",
			DurationType: leave.DurationFullDay,
			StartDate:    day(2024, 5, 30),
			EndDate:      day(2024, 6, 2),
		},
	}, day(2024, 6, 1), day(2024, 6, 30))

	if _, ok := idx.Get("emp-1", "2024-05-01"); ok {
		t.Error("request entirely before the range was indexed")
	}
	if _, ok := idx.Get("emp-1", "2024-07-01"); ok {
		t.Error("request entirely after the range was indexed")
	}
	if _, ok := idx.Get("emp-2", "2024-06-01"); !ok {
		t.Error("straddling request was dropped")
	}
}

func TestBuildLeaveIndexLastWriteWins(t *testing.T) {
	idx := BuildLeaveIndex([]leave.LeaveRequest{
		{
			EmployeeID:   "emp-1",
			LeaveType:    leave.LeaveTypeAnnual,
			DurationType: leave.DurationFullDay,
			StartDate:    day(2024, 6, 10),
			EndDate:      day(2024, 6, 10),
		},
		{
			EmployeeID:   "emp-1",
			LeaveType:    leave.LeaveTypeSick,
			DurationType: leave.DurationFullDay,
			StartDate:    day(2024, 6, 10),
			EndDate:      day(2024, 6, 10),
		},
	}, day(2024, 6, 1), day(2024, 6, 30))

	info, ok := idx.Get("emp-1", "2024-06-10")
	if !ok {
		t.Fatal("missing entry")
	}
	if info.LeaveType != leave.LeaveTypeSick {
		t.Errorf("LeaveType = %s, want the later entry to win", info.LeaveType)
	}
}

func TestEffectiveLatenessThreshold(t *testing.T) {
	tests := []struct {
		name      string
		startTime *string
		endTime   *string
		duration  leave.DurationType
		want      int
	}{
		{
			name:     "no leave keeps 08:30",
			duration: "",
			want:     510,
		},
		{
			name:      "morning leave shifts to its end",
			startTime: strPtr("08:00"),
			endTime:   strPtr("09:00"),
			duration:  leave.DurationHourly,
			want:      540,
		},
		{
			name:      "leave starting after 08:30 does not shift",
			startTime: strPtr("09:00"),
			endTime:   strPtr("10:00"),
			duration:  leave.DurationHourly,
			want:      510,
		},
		{
			name:      "leave ending before 08:30 does not shift backwards",
			startTime: strPtr("07:00"),
			endTime:   strPtr("08:00"),
			duration:  leave.DurationHourly,
			want:      510,
		},
		{
			name:      "malformed times keep 08:30",
			startTime: strPtr("8am"),
			endTime:   strPtr("9am"),
			duration:  leave.DurationHourly,
			want:      510,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := make(LeaveIndex)
			if tt.duration != "" {
				idx[leaveKey("emp-1", "2024-06-10")] = LeaveInfo{
					DurationType: tt.duration,
					StartTime:    tt.startTime,
					EndTime:      tt.endTime,
				}
			}

			if got := idx.EffectiveLatenessThreshold("emp-1", "2024-06-10"); got != tt.want {
				t.Errorf("EffectiveLatenessThreshold() = %d, want %d", got, tt.want)
			}
		})
	}
}
