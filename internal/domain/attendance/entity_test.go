package attendance

import (
	"testing"
	"time"
)

func TestUnmarshalReports(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"array", `[{"work_type":"production","project":"A","duration":"4h","hours":4}]`, 1},
		{"legacy bare object", `{"work_type":"maintenance","project":"B","duration":"2h","hours":2}`, 1},
		{"multiple", `[{"project":"A"},{"project":"B"}]`, 2},
		{"empty array", `[]`, 0},
		{"garbage", `not json`, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := UnmarshalReports([]byte(c.raw))
			if len(got) != c.want {
				t.Errorf("UnmarshalReports(%s) returned %d reports, want %d", c.raw, len(got), c.want)
			}
		})
	}

	if got := UnmarshalReports(nil); got != nil {
		t.Errorf("UnmarshalReports(nil) = %v, want nil", got)
	}
}

func TestHasCompleteTimes(t *testing.T) {
	now := time.Now()

	complete := WorkRecord{
		Status:   StatusCompleted,
		CheckIn:  &CheckIn{Timestamp: now},
		CheckOut: &CheckOut{Timestamp: now.Add(8 * time.Hour)},
	}
	if !complete.HasCompleteTimes() {
		t.Error("completed record with both timestamps should have complete times")
	}

	cases := []struct {
		name string
		rec  WorkRecord
	}{
		{"still checked in", WorkRecord{Status: StatusCheckedIn, CheckIn: &CheckIn{Timestamp: now}}},
		{"missing check-out", WorkRecord{Status: StatusCompleted, CheckIn: &CheckIn{Timestamp: now}}},
		{"zero check-in timestamp", WorkRecord{
			Status:   StatusCompleted,
			CheckIn:  &CheckIn{},
			CheckOut: &CheckOut{Timestamp: now},
		}},
		{"report only", WorkRecord{Status: StatusReportOnly}},
	}
	for _, c := range cases {
		if c.rec.HasCompleteTimes() {
			t.Errorf("%s: HasCompleteTimes() = true, want false", c.name)
		}
	}
}
