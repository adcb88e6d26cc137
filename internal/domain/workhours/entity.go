package workhours

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status classifies one employee-day.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
	// StatusDayOff marks a non-working day (designated weekend or holiday)
	// with no check-in. The record exists so the month is fully materialized,
	// but it is excluded from present/absent/late counts and never penalized.
	StatusDayOff Status = "day_off"
)

// Countable reports whether the day participates in worked-hours and
// attendance counts.
func (s Status) Countable() bool {
	return s == StatusPresent || s == StatusLate
}

// Record is the derived work-hours result for one (employee, date). It is a
// pure function of the day's events plus the work policy: re-derivation for
// the same inputs replaces the row with an identical one.
type Record struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	FirstCheckIn *time.Time
	LastCheckOut *time.Time
	// RegularHours is capped at the policy's regular cap; OvertimeHours is the
	// excess. Both are rounded to two decimals half-up at storage; the
	// intermediate math stays at full precision.
	RegularHours      decimal.Decimal
	OvertimeHours     decimal.Decimal
	LateMinutes       int
	EarlyLeaveMinutes int
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
