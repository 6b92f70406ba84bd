package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/eakathit/TimeTracker/internal/domain/calendar"
	"github.com/eakathit/TimeTracker/internal/handler/http/response"
)

type CalendarHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	AddHoliday(w http.ResponseWriter, r *http.Request)
	RemoveHoliday(w http.ResponseWriter, r *http.Request)
	AddWorkingSaturday(w http.ResponseWriter, r *http.Request)
	RemoveWorkingSaturday(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	ruleSetService calendar.RuleSetService
}

func NewCalendarHandler(ruleSetService calendar.RuleSetService) CalendarHandler {
	return &CalendarHandlerImpl{ruleSetService: ruleSetService}
}

func (h *CalendarHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	rules, err := h.ruleSetService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rules)
}

func (h *CalendarHandlerImpl) AddHoliday(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, h.ruleSetService.AddHoliday, "Holiday added")
}

func (h *CalendarHandlerImpl) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, h.ruleSetService.RemoveHoliday, "Holiday removed")
}

func (h *CalendarHandlerImpl) AddWorkingSaturday(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, h.ruleSetService.AddWorkingSaturday, "Working Saturday added")
}

func (h *CalendarHandlerImpl) RemoveWorkingSaturday(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, h.ruleSetService.RemoveWorkingSaturday, "Working Saturday removed")
}

func (h *CalendarHandlerImpl) modify(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, req calendar.ModifyDateRequest) (calendar.RuleSetResponse, error),
	message string,
) {
	var req calendar.ModifyDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rules, err := op(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, rules)
}
