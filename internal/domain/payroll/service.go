package payroll

import "context"

// PayrollService computes payroll summaries over a date range.
type PayrollService interface {
	// Summary fetches all inputs for the queried range, runs the
	// aggregation pass, and returns formatted rows sorted by full name.
	Summary(ctx context.Context, query SummaryQuery) ([]SummaryRow, error)

	// Export returns the summary as an export-ready table: a header row
	// followed by one row per employee.
	Export(ctx context.Context, query SummaryQuery) ([][]string, error)
}
