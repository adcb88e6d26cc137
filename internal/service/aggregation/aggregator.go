package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/policy"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/summary"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
)

// Aggregate folds one employee's month of work-hours records into an
// attendance summary. It is total and idempotent: a month with zero
// qualifying days yields an all-zero summary, and re-running with the same
// inputs produces an identical one.
//
// Only present/late days contribute hours and early-leave minutes; lateness
// minutes come from late days; leave days are taken verbatim from the
// external workflow; the penalty is always the table applied to the month's
// cumulative lateness.
func Aggregate(employeeID string, month int, year int, records []workhours.Record, leaveDays int, table policy.PenaltyTable) summary.Summary {
	s := summary.Summary{
		EmployeeID:    employeeID,
		Month:         month,
		Year:          year,
		TotalHours:    decimal.Zero.Round(2),
		OvertimeHours: decimal.Zero.Round(2),
		LeaveDays:     leaveDays,
	}

	for _, rec := range records {
		if !rec.Status.Countable() {
			continue
		}
		s.TotalHours = s.TotalHours.Add(rec.RegularHours).Add(rec.OvertimeHours)
		s.OvertimeHours = s.OvertimeHours.Add(rec.OvertimeHours)
		s.EarlyMinutes += rec.EarlyLeaveMinutes
		if rec.Status == workhours.StatusLate {
			s.LateMinutes += rec.LateMinutes
		}
	}

	s.TotalHours = s.TotalHours.Round(2)
	s.OvertimeHours = s.OvertimeHours.Round(2)
	s.PenaltyAmount = table.Amount(s.LateMinutes)

	return s
}
