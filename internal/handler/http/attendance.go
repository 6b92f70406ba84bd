package http

import (
	"encoding/json"
	"net/http"

	"github.com/eakathit/TimeTracker/internal/domain/attendance"
	"github.com/eakathit/TimeTracker/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	SubmitReport(w http.ResponseWriter, r *http.Request)
	Backfill(w http.ResponseWriter, r *http.Request)
	GetMyRecords(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	recordService attendance.WorkRecordService
}

func NewAttendanceHandler(recordService attendance.WorkRecordService) AttendanceHandler {
	return &AttendanceHandlerImpl{recordService: recordService}
}

func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	record, err := h.recordService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", record)
}

func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	record, err := h.recordService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", record)
}

func (h *AttendanceHandlerImpl) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.recordService.SubmitReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report submitted successfully", record)
}

func (h *AttendanceHandlerImpl) Backfill(w http.ResponseWriter, r *http.Request) {
	var req attendance.BackfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.recordService.Backfill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record saved successfully", record)
}

func (h *AttendanceHandlerImpl) GetMyRecords(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RangeFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	records, err := h.recordService.GetMyRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
