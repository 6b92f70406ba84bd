package http

import (
	"net/http"

	"github.com/eakathit/TimeTracker/internal/domain/payroll"
	"github.com/eakathit/TimeTracker/internal/handler/http/response"
)

type PayrollHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func queryFromRequest(r *http.Request) payroll.SummaryQuery {
	q := r.URL.Query()
	return payroll.SummaryQuery{
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
		EmployeeID: q.Get("employee_id"),
		Department: q.Get("department"),
		Name:       q.Get("name"),
	}
}

func (h *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.payrollService.Summary(r.Context(), queryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Export returns the summary as a header-plus-rows table ready for
// spreadsheet rendering downstream.
func (h *PayrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	table, err := h.payrollService.Export(r.Context(), queryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, table)
}
