package attendance

import (
	"encoding/json"
	"time"
)

// WorkRecord is one attendance record per (employee, calendar day).
type WorkRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *CheckIn
	CheckOut   *CheckOut
	Status     Status
	Reports    []Report

	// Overtime is the recorded override in hours. When present it wins
	// over the computed value, even when zero; when absent callers fall
	// back to the computed value. OT approvals accumulate into it.
	Overtime *float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

type CheckIn struct {
	Timestamp time.Time `json:"timestamp"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	WorkType  WorkType  `json:"work_type"`
}

type CheckOut struct {
	Timestamp time.Time `json:"timestamp"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

type WorkType string

const (
	WorkTypeInFactory WorkType = "in_factory"
	WorkTypeOnSite    WorkType = "on_site"
	WorkTypeGroup     WorkType = "group"
)

type Status string

const (
	StatusCheckedIn  Status = "checked_in"
	StatusCompleted  Status = "completed"
	StatusReportOnly Status = "report_only"
)

// Report is a free-form daily report attached to a work record.
type Report struct {
	WorkType string  `json:"work_type"`
	Project  string  `json:"project"`
	Duration string  `json:"duration"`
	Hours    float64 `json:"hours"`
}

// HasCompleteTimes reports whether the record carries both timestamps
// needed for hour computation. Records failing this still count toward
// day-presence totals.
func (r WorkRecord) HasCompleteTimes() bool {
	return r.Status == StatusCompleted &&
		r.CheckIn != nil && !r.CheckIn.Timestamp.IsZero() &&
		r.CheckOut != nil && !r.CheckOut.Timestamp.IsZero()
}

// UnmarshalReports decodes the stored reports column, which historically
// held either a JSON array or a bare report object. The legacy single
// object is normalized to a one-element slice so no caller ever branches
// on the shape.
func UnmarshalReports(raw []byte) []Report {
	if len(raw) == 0 {
		return nil
	}

	var list []Report
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var single Report
	if err := json.Unmarshal(raw, &single); err == nil {
		return []Report{single}
	}

	return nil
}
