package payroll

import "time"

// WorkHours is the result of one check-in/check-out pair.
type WorkHours struct {
	Regular  float64
	Overtime float64
}

const (
	lunchStartHour   = 12
	lunchEndHour     = 13
	overtimeGateHour = 18
	regularDailyCap  = 8.0
)

// ComputeWorkHours turns a check-in/check-out pair into regular and
// overtime hours.
//
// One hour of lunch is deducted when the interval overlaps the fixed
// [12:00, 13:00) window on the check-in's calendar date, in full,
// regardless of partial overlap. Overtime requires checking out at or
// after 18:00; it is then counted from a 17:30 base in whole 30-minute
// blocks, so the 17:30-18:00 stretch earns nothing and partial blocks
// are discarded. Regular hours are the lunch-adjusted elapsed time
// minus overtime, capped at 8 and never negative.
//
// Inverted pairs (checkout before check-in) yield zeros rather than an
// error; clock skew must not abort a payroll run.
func ComputeWorkHours(checkIn, checkOut time.Time) WorkHours {
	elapsed := checkOut.Sub(checkIn)
	if elapsed <= 0 {
		return WorkHours{}
	}

	hours := elapsed.Hours()

	loc := checkIn.Location()
	y, m, d := checkIn.Date()
	lunchStart := time.Date(y, m, d, lunchStartHour, 0, 0, 0, loc)
	lunchEnd := time.Date(y, m, d, lunchEndHour, 0, 0, 0, loc)
	if checkIn.Before(lunchEnd) && checkOut.After(lunchStart) {
		hours -= 1.0
	}

	y, m, d = checkOut.Date()
	otGate := time.Date(y, m, d, overtimeGateHour, 0, 0, 0, checkOut.Location())
	otBase := time.Date(y, m, d, overtimeGateHour-1, 30, 0, 0, checkOut.Location())

	var overtime float64
	if !checkOut.Before(otGate) {
		blocks := int(checkOut.Sub(otBase) / (30 * time.Minute))
		overtime = float64(blocks) * 0.5
	}

	regular := hours - overtime
	if regular > regularDailyCap {
		regular = regularDailyCap
	}
	if regular < 0 {
		regular = 0
	}

	return WorkHours{Regular: regular, Overtime: overtime}
}
