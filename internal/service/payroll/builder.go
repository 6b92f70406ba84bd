package payroll

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eakathit/TimeTracker/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// RowFilter narrows the formatted output. Zero values match everything.
type RowFilter struct {
	Name       string // case-insensitive substring on full name
	Department string // exact match
}

// BuildRows formats aggregator output for presentation. Accumulator
// values pass through unchanged; only display fields are derived.
// Rates maps employee ID to an hourly rate for the optional gross-pay
// estimate; employees without a rate get no estimate.
func BuildRows(summaries []payroll.EmployeeSummary, filter RowFilter, rates map[string]decimal.Decimal) []payroll.SummaryRow {
	rows := make([]payroll.SummaryRow, 0, len(summaries))

	nameFilter := strings.ToLower(strings.TrimSpace(filter.Name))

	for _, s := range summaries {
		if nameFilter != "" && !strings.Contains(strings.ToLower(s.FullName), nameFilter) {
			continue
		}
		if filter.Department != "" && s.Department != filter.Department {
			continue
		}

		row := payroll.SummaryRow{
			EmployeeID:       s.EmployeeID,
			FullName:         s.FullName,
			Department:       s.Department,
			PayType:          string(s.PayType),
			RegularHours:     s.RegularHours,
			OvertimeHours15x: s.OvertimeHours15x,
			HolidayHours1x:   s.HolidayHours1x,
			HolidayHours2x:   s.HolidayHours2x,
			OvertimeHours3x:  s.OvertimeHours3x,
			WorkedDays:       s.WorkedDays,
			ReportedDays:     s.ReportedDays,
			LateDays:         s.LateDays,
			LeaveDays:        s.LeaveDays,
			AbsentDays:       s.AbsentDays,
			Attendance:       fmt.Sprintf("late %d / leave %d / absent %d", s.LateDays, s.LeaveDays, s.AbsentDays),
		}

		if rate, ok := rates[s.EmployeeID]; ok {
			gross := estimateGrossPay(s, rate)
			row.GrossPay = &gross
		}

		rows = append(rows, row)
	}

	return rows
}

// estimateGrossPay values the accumulated hours at the employee's
// hourly rate with the standard multipliers. Display-only; payroll
// proper is settled outside this system.
func estimateGrossPay(s payroll.EmployeeSummary, rate decimal.Decimal) float64 {
	hours := decimal.NewFromFloat(s.RegularHours).
		Add(decimal.NewFromFloat(s.OvertimeHours15x).Mul(decimal.NewFromFloat(1.5))).
		Add(decimal.NewFromFloat(s.HolidayHours1x)).
		Add(decimal.NewFromFloat(s.HolidayHours2x).Mul(decimal.NewFromInt(2))).
		Add(decimal.NewFromFloat(s.OvertimeHours3x).Mul(decimal.NewFromInt(3)))

	gross, _ := rate.Mul(hours).Round(2).Float64()
	return gross
}

// ExportTable shapes rows into a spreadsheet-ready table: a header row
// followed by one row per employee.
func ExportTable(rows []payroll.SummaryRow) [][]string {
	table := [][]string{{
		"Full Name", "Department", "Total Working Days",
		"Regular Working Hours", "Overtime (OT)",
		"Holiday Pay (1x)", "Holiday Pay (2x)", "Holiday Overtime (3x)",
		"Late Arrivals", "Leave Days", "Absences",
	}}

	for _, r := range rows {
		table = append(table, []string{
			r.FullName,
			r.Department,
			strconv.Itoa(r.WorkedDays),
			strconv.FormatFloat(r.RegularHours, 'f', 2, 64),
			strconv.FormatFloat(r.OvertimeHours15x, 'f', 1, 64),
			strconv.FormatFloat(r.HolidayHours1x, 'f', 2, 64),
			strconv.FormatFloat(r.HolidayHours2x, 'f', 2, 64),
			strconv.FormatFloat(r.OvertimeHours3x, 'f', 1, 64),
			strconv.Itoa(r.LateDays),
			strconv.Itoa(r.LeaveDays),
			strconv.Itoa(r.AbsentDays),
		})
	}

	return table
}
