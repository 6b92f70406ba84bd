package http

import (
	"encoding/json"
	"net/http"

	"github.com/eakathit/TimeTracker/internal/domain/overtime"
	"github.com/eakathit/TimeTracker/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OvertimeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

func (h *OvertimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	request, err := h.overtimeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", request)
}

func (h *OvertimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	request, err := h.overtimeService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request approved", request)
}

func (h *OvertimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	request, err := h.overtimeService.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected", request)
}

func (h *OvertimeHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.overtimeService.GetMyRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *OvertimeHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.overtimeService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
