package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the monthly attendance roll-up for one (employee, month, year).
// It is created or replaced wholesale by the aggregator and never patched:
// PenaltyAmount is always the penalty table applied to LateMinutes, and
// TotalHours >= OvertimeHours >= 0.
type Summary struct {
	ID            string
	EmployeeID    string
	Month         int
	Year          int
	TotalHours    decimal.Decimal
	OvertimeHours decimal.Decimal
	// LeaveDays comes verbatim from the external leave workflow; it is not
	// derived from work-hours records.
	LeaveDays     int
	LateMinutes   int
	EarlyMinutes  int
	PenaltyAmount int64
	GeneratedAt   time.Time
}
