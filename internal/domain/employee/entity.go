package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Email        string
	PasswordHash *string
	GoogleID     *string
	FullName     string
	Department   string
	PayType      PayType
	Role         Role
	HourlyRate   *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PayType decides which holiday-pay bucket worked hours on a
// non-working day fall into: 1x for monthly staff, 2x for daily staff.
type PayType string

const (
	PayTypeMonthly PayType = "monthly"
	PayTypeDaily   PayType = "daily"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)
