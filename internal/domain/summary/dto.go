package summary

import (
	"fmt"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/pkg/validator"
)

// ========================================
// SUMMARY DTOs
// ========================================

type SummaryResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	TotalHours    string `json:"total_hours"`
	OvertimeHours string `json:"overtime_hours"`
	LeaveDays     int    `json:"leave_days"`
	LateMinutes   int    `json:"late_minutes"`
	EarlyMinutes  int    `json:"early_minutes"`
	PenaltyAmount int64  `json:"penalty_amount"`
	GeneratedAt   string `json:"generated_at"`
}

func ToResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		Month:         s.Month,
		Year:          s.Year,
		TotalHours:    s.TotalHours.StringFixed(2),
		OvertimeHours: s.OvertimeHours.StringFixed(2),
		LeaveDays:     s.LeaveDays,
		LateMinutes:   s.LateMinutes,
		EarlyMinutes:  s.EarlyMinutes,
		PenaltyAmount: s.PenaltyAmount,
		GeneratedAt:   s.GeneratedAt.Format(time.RFC3339),
	}
}

// MonthRequest selects one calendar month.
type MonthRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AggregateRequest asks for (re-)aggregation of one employee's month, or of
// every active employee when EmployeeID is empty. Re-running with the same
// inputs replaces the prior summary with an identical one.
type AggregateRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *AggregateRequest) Validate() error {
	m := MonthRequest{Month: r.Month, Year: r.Year}
	return m.Validate()
}

type AggregateResponse struct {
	Aggregated int               `json:"aggregated"`
	Summaries  []SummaryResponse `json:"summaries"`
}

type ListSummariesResponse struct {
	Summaries []SummaryResponse `json:"summaries"`
	Month     int               `json:"month"`
	Year      int               `json:"year"`
}
