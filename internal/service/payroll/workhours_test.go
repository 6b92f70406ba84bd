package payroll

import (
	"math"
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestComputeWorkHours(t *testing.T) {
	tests := []struct {
		name         string
		checkIn      time.Time
		checkOut     time.Time
		wantRegular  float64
		wantOvertime float64
	}{
		{
			name:     "checkout before checkin clamps to zero",
			checkIn:  at(9, 0),
			checkOut: at(8, 0),
		},
		{
			name:     "checkout equal to checkin",
			checkIn:  at(9, 0),
			checkOut: at(9, 0),
		},
		{
			name:         "standard day 08:30 to 17:30",
			checkIn:      at(8, 30),
			checkOut:     at(17, 30),
			wantRegular:  8.0,
			wantOvertime: 0,
		},
		{
			name:         "17:59 checkout misses the 18:00 gate",
			checkIn:      at(8, 30),
			checkOut:     at(17, 59),
			wantRegular:  8.0,
			wantOvertime: 0,
		},
		{
			name:         "18:00 checkout earns the 17:30 block",
			checkIn:      at(8, 30),
			checkOut:     at(18, 0),
			wantRegular:  8.0,
			wantOvertime: 0.5,
		},
		{
			name:         "18:14 checkout yields one block",
			checkIn:      at(8, 30),
			checkOut:     at(18, 14),
			wantRegular:  8.0,
			wantOvertime: 0.5,
		},
		{
			name:         "18:30 checkout yields two blocks",
			checkIn:      at(8, 30),
			checkOut:     at(18, 30),
			wantRegular:  8.0,
			wantOvertime: 1.0,
		},
		{
			name:         "afternoon only skips lunch deduction",
			checkIn:      at(13, 30),
			checkOut:     at(17, 0),
			wantRegular:  3.5,
			wantOvertime: 0,
		},
		{
			name:         "morning shift overlapping lunch start",
			checkIn:      at(8, 0),
			checkOut:     at(12, 30),
			wantRegular:  3.5,
			wantOvertime: 0,
		},
		{
			name:         "short interval inside lunch clamps regular to zero",
			checkIn:      at(12, 15),
			checkOut:     at(12, 45),
			wantRegular:  0,
			wantOvertime: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWorkHours(tt.checkIn, tt.checkOut)
			if math.Abs(got.Regular-tt.wantRegular) > 1e-9 {
				t.Errorf("Regular = %v, want %v", got.Regular, tt.wantRegular)
			}
			if math.Abs(got.Overtime-tt.wantOvertime) > 1e-9 {
				t.Errorf("Overtime = %v, want %v", got.Overtime, tt.wantOvertime)
			}
		})
	}
}

func TestComputeWorkHoursNeverNegative(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 15, 30, 45} {
			got := ComputeWorkHours(at(8, 30), at(h, m))
			if got.Regular < 0 {
				t.Fatalf("negative regular hours %v for checkout %02d:%02d", got.Regular, h, m)
			}
			if got.Overtime < 0 {
				t.Fatalf("negative overtime %v for checkout %02d:%02d", got.Overtime, h, m)
			}
		}
	}
}
