package payroll

import (
	"testing"

	"github.com/eakathit/TimeTracker/internal/domain/employee"
	"github.com/eakathit/TimeTracker/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummaries() []payroll.EmployeeSummary {
	return []payroll.EmployeeSummary{
		{
			EmployeeID:       "emp-1",
			FullName:         "Alice Anderson",
			Department:       "Production",
			PayType:          employee.PayTypeMonthly,
			RegularHours:     160,
			OvertimeHours15x: 4,
			WorkedDays:       20,
			LateDays:         2,
			LeaveDays:        1,
			AbsentDays:       0,
		},
		{
			EmployeeID:     "emp-2",
			FullName:       "Bob Brown",
			Department:     "Logistics",
			PayType:        employee.PayTypeDaily,
			RegularHours:   120,
			HolidayHours2x: 8,
			WorkedDays:     16,
			AbsentDays:     3,
		},
	}
}

func TestBuildRowsFilters(t *testing.T) {
	tests := []struct {
		name    string
		filter  RowFilter
		wantIDs []string
	}{
		{"no filter keeps all", RowFilter{}, []string{"emp-1", "emp-2"}},
		{"name substring is case-insensitive", RowFilter{Name: "alice"}, []string{"emp-1"}},
		{"department is exact", RowFilter{Department: "Logistics"}, []string{"emp-2"}},
		{"unmatched filter yields empty", RowFilter{Name: "zed"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := BuildRows(sampleSummaries(), tt.filter, nil)

			var ids []string
			for _, r := range rows {
				ids = append(ids, r.EmployeeID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestBuildRowsPreservesValues(t *testing.T) {
	rows := BuildRows(sampleSummaries(), RowFilter{}, nil)
	require.Len(t, rows, 2)

	row := rows[0]
	assert.Equal(t, 160.0, row.RegularHours)
	assert.Equal(t, 4.0, row.OvertimeHours15x)
	assert.Equal(t, 20, row.WorkedDays)
	assert.Equal(t, "late 2 / leave 1 / absent 0", row.Attendance)
	assert.Nil(t, row.GrossPay, "gross pay estimated without a rate")
}

func TestBuildRowsGrossPay(t *testing.T) {
	rates := map[string]decimal.Decimal{
		// 160 + 4*1.5 = 166 hours at 100/h.
		"emp-1": decimal.NewFromInt(100),
	}

	rows := BuildRows(sampleSummaries(), RowFilter{}, rates)

	require.NotNil(t, rows[0].GrossPay)
	assert.Equal(t, 16600.0, *rows[0].GrossPay)
	assert.Nil(t, rows[1].GrossPay, "employee without a rate received an estimate")
}

func TestExportTable(t *testing.T) {
	rows := BuildRows(sampleSummaries(), RowFilter{}, nil)
	table := ExportTable(rows)

	require.Len(t, table, 3, "header + 2 rows")
	assert.Equal(t, "Full Name", table[0][0])
	assert.Equal(t, "Total Working Days", table[0][2])

	first := table[1]
	assert.Equal(t, "Alice Anderson", first[0])
	assert.Equal(t, "160.00", first[3])
	assert.Equal(t, "4.0", first[4])

	assert.Len(t, first, len(table[0]), "row width must match header width")
}
