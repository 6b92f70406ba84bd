package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/eakathit/TimeTracker/internal/domain/calendar"
	"github.com/eakathit/TimeTracker/internal/pkg/database"
)

type calendarRuleRepositoryImpl struct {
	db *database.DB
}

func NewCalendarRuleRepository(db *database.DB) calendar.RuleSetRepository {
	return &calendarRuleRepositoryImpl{db: db}
}

const (
	ruleTypeHoliday         = "holiday"
	ruleTypeWorkingSaturday = "working_saturday"
)

func (c *calendarRuleRepositoryImpl) Get(ctx context.Context) (calendar.RuleSet, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT rule_type, date FROM calendar_rules`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return calendar.RuleSet{}, err
	}
	defer rows.Close()

	rules := calendar.NewRuleSet(nil, nil)
	for rows.Next() {
		var ruleType string
		var date time.Time
		if err := rows.Scan(&ruleType, &date); err != nil {
			return calendar.RuleSet{}, err
		}

		key := calendar.DateKey(date)
		switch ruleType {
		case ruleTypeHoliday:
			rules.Holidays[key] = struct{}{}
		case ruleTypeWorkingSaturday:
			rules.WorkingSaturdays[key] = struct{}{}
		}
	}

	if err = rows.Err(); err != nil {
		return calendar.RuleSet{}, err
	}

	return rules, nil
}

func (c *calendarRuleRepositoryImpl) AddHoliday(ctx context.Context, dateKey string) error {
	return c.add(ctx, ruleTypeHoliday, dateKey)
}

func (c *calendarRuleRepositoryImpl) RemoveHoliday(ctx context.Context, dateKey string) error {
	return c.remove(ctx, ruleTypeHoliday, dateKey)
}

func (c *calendarRuleRepositoryImpl) AddWorkingSaturday(ctx context.Context, dateKey string) error {
	return c.add(ctx, ruleTypeWorkingSaturday, dateKey)
}

func (c *calendarRuleRepositoryImpl) RemoveWorkingSaturday(ctx context.Context, dateKey string) error {
	return c.remove(ctx, ruleTypeWorkingSaturday, dateKey)
}

func (c *calendarRuleRepositoryImpl) add(ctx context.Context, ruleType, dateKey string) error {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO calendar_rules (rule_type, date)
		VALUES ($1, $2)
		ON CONFLICT (rule_type, date) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, ruleType, dateKey); err != nil {
		return fmt.Errorf("failed to add %s: %w", ruleType, err)
	}
	return nil
}

func (c *calendarRuleRepositoryImpl) remove(ctx context.Context, ruleType, dateKey string) error {
	q := GetQuerier(ctx, c.db)

	query := `DELETE FROM calendar_rules WHERE rule_type = $1 AND date = $2`

	if _, err := q.Exec(ctx, query, ruleType, dateKey); err != nil {
		return fmt.Errorf("failed to remove %s: %w", ruleType, err)
	}
	return nil
}
