package report

import (
	"fmt"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type MonthlyAttendanceReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyAttendanceReportRequest) Validate() error {
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

type MonthlyAttendanceReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Employees []MonthlyAttendanceEmployee `json:"employees"`
}

type MonthlyAttendanceEmployee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"`
	Position     string `json:"position"`

	Summary   AttendanceTotals     `json:"summary"`
	DailyLogs []AttendanceDailyLog `json:"daily_logs"`
}

type AttendanceTotals struct {
	TotalHours    string `json:"total_hours"`
	OvertimeHours string `json:"overtime_hours"`
	LeaveDays     int    `json:"leave_days"`
	LateMinutes   int    `json:"late_minutes"`
	EarlyMinutes  int    `json:"early_minutes"`
	PenaltyAmount int64  `json:"penalty_amount"`
	PresentDays   int    `json:"present_days"`
	LateDays      int    `json:"late_days"`
	AbsentDays    int    `json:"absent_days"`
}

type AttendanceDailyLog struct {
	Date              string  `json:"date"`
	DayOfWeek         string  `json:"day_of_week"`
	FirstCheckIn      *string `json:"first_check_in,omitempty"`
	LastCheckOut      *string `json:"last_check_out,omitempty"`
	RegularHours      string  `json:"regular_hours"`
	OvertimeHours     string  `json:"overtime_hours"`
	Status            string  `json:"status"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
}
