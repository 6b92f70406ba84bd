package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/eakathit/TimeTracker/internal/domain/calendar"
)

type RuleSetServiceImpl struct {
	calendarRepo calendar.RuleSetRepository
	logger       *slog.Logger
}

func NewRuleSetService(calendarRepo calendar.RuleSetRepository, logger *slog.Logger) calendar.RuleSetService {
	return &RuleSetServiceImpl{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

func (s *RuleSetServiceImpl) Get(ctx context.Context) (calendar.RuleSetResponse, error) {
	rules, err := s.calendarRepo.Get(ctx)
	if err != nil {
		return calendar.RuleSetResponse{}, fmt.Errorf("failed to load calendar rules: %w", err)
	}
	return toResponse(rules), nil
}

func (s *RuleSetServiceImpl) AddHoliday(ctx context.Context, req calendar.ModifyDateRequest) (calendar.RuleSetResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.RuleSetResponse{}, err
	}

	if err := s.calendarRepo.AddHoliday(ctx, req.Date); err != nil {
		return calendar.RuleSetResponse{}, fmt.Errorf("failed to add holiday: %w", err)
	}

	s.logger.InfoContext(ctx, "holiday added", slog.String("date", req.Date))

	return s.Get(ctx)
}

func (s *RuleSetServiceImpl) RemoveHoliday(ctx context.Context, req calendar.ModifyDateRequest) (calendar.RuleSetResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.RuleSetResponse{}, err
	}

	if err := s.calendarRepo.RemoveHoliday(ctx, req.Date); err != nil {
		return calendar.RuleSetResponse{}, fmt.Errorf("failed to remove holiday: %w", err)
	}

	return s.Get(ctx)
}

func (s *RuleSetServiceImpl) AddWorkingSaturday(ctx context.Context, req calendar.ModifyDateRequest) (calendar.RuleSetResponse, error) {
	if err := req.ValidateSaturday(); err != nil {
		return calendar.RuleSetResponse{}, err
	}

	if err := s.calendarRepo.AddWorkingSaturday(ctx, req.Date); err != nil {
		return calendar.RuleSetResponse{}, fmt.Errorf("failed to add working saturday: %w", err)
	}

	s.logger.InfoContext(ctx, "working saturday added", slog.String("date", req.Date))

	return s.Get(ctx)
}

func (s *RuleSetServiceImpl) RemoveWorkingSaturday(ctx context.Context, req calendar.ModifyDateRequest) (calendar.RuleSetResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.RuleSetResponse{}, err
	}

	if err := s.calendarRepo.RemoveWorkingSaturday(ctx, req.Date); err != nil {
		return calendar.RuleSetResponse{}, fmt.Errorf("failed to remove working saturday: %w", err)
	}

	return s.Get(ctx)
}

func toResponse(rules calendar.RuleSet) calendar.RuleSetResponse {
	resp := calendar.RuleSetResponse{
		Holidays:         make([]string, 0, len(rules.Holidays)),
		WorkingSaturdays: make([]string, 0, len(rules.WorkingSaturdays)),
	}
	for d := range rules.Holidays {
		resp.Holidays = append(resp.Holidays, d)
	}
	for d := range rules.WorkingSaturdays {
		resp.WorkingSaturdays = append(resp.WorkingSaturdays, d)
	}
	sort.Strings(resp.Holidays)
	sort.Strings(resp.WorkingSaturdays)
	return resp
}
