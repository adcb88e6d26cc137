package workhours

import (
	"fmt"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/pkg/validator"
)

// ========================================
// WORK HOURS DTOs
// ========================================

type RecordResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	Date              string  `json:"date"`
	FirstCheckIn      *string `json:"first_check_in,omitempty"`
	LastCheckOut      *string `json:"last_check_out,omitempty"`
	RegularHours      string  `json:"regular_hours"`
	OvertimeHours     string  `json:"overtime_hours"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
	Status            string  `json:"status"`
}

// ToResponse flattens a record for transport.
func ToResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		Date:              r.Date.Format("2006-01-02"),
		RegularHours:      r.RegularHours.StringFixed(2),
		OvertimeHours:     r.OvertimeHours.StringFixed(2),
		LateMinutes:       r.LateMinutes,
		EarlyLeaveMinutes: r.EarlyLeaveMinutes,
		Status:            string(r.Status),
	}
	if r.FirstCheckIn != nil {
		s := r.FirstCheckIn.Format("2006-01-02 15:04:05")
		resp.FirstCheckIn = &s
	}
	if r.LastCheckOut != nil {
		s := r.LastCheckOut.Format("2006-01-02 15:04:05")
		resp.LastCheckOut = &s
	}
	return resp
}

type RecordFilter struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if f.Year < 2020 || f.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 31
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListRecordsResponse struct {
	Records    []RecordResponse `json:"records"`
	TotalItems int64            `json:"total_items"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

// DeriveRequest asks for (re-)derivation of one employee-day, or of every
// active employee on the date when EmployeeID is empty. Re-derivation after
// late-arriving events overwrites the prior record for the key.
type DeriveRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (r *DeriveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeriveResponse struct {
	Derived int              `json:"derived"`
	Records []RecordResponse `json:"records"`
}
