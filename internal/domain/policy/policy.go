package policy

import (
	"time"
)

// WorkPolicy is the immutable work-rule configuration the derivation and
// aggregation pipeline runs against. It is built once at startup from config
// and passed into every call; nothing in the engine reads ambient state.
type WorkPolicy struct {
	// ShiftStartMinutes and ShiftEndMinutes are minutes from local midnight
	// (e.g. 480 = 08:00, 1020 = 17:00).
	ShiftStartMinutes int
	ShiftEndMinutes   int

	// GraceMinutes after shift start before a check-in counts as late.
	GraceMinutes int

	// BreakMinutes is the unpaid break deducted from gross presence before
	// the regular/overtime split.
	BreakMinutes int

	// RegularHoursCap is the maximum regular hours credited per day; presence
	// beyond the cap is overtime.
	RegularHoursCap int

	// WeekendShiftDays remaps weekday indices before the weekend test.
	// 0 keeps the natural Saturday/Sunday weekend; the default deployment
	// value of 3 designates Wednesday/Thursday as the rest days.
	WeekendShiftDays int

	PenaltyTable PenaltyTable
}

// ShiftStartOn returns the shift start as a wall-clock timestamp on the given day.
func (p WorkPolicy) ShiftStartOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
		Add(time.Duration(p.ShiftStartMinutes) * time.Minute)
}

// ShiftEndOn returns the shift end as a wall-clock timestamp on the given day.
func (p WorkPolicy) ShiftEndOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
		Add(time.Duration(p.ShiftEndMinutes) * time.Minute)
}

// LateDeadlineOn returns the last check-in instant on the given day that still
// counts as on time.
func (p WorkPolicy) LateDeadlineOn(day time.Time) time.Time {
	return p.ShiftStartOn(day).Add(time.Duration(p.GraceMinutes) * time.Minute)
}

// Validate fails fast on setup defects so no record is ever derived against a
// broken policy.
func (p WorkPolicy) Validate() error {
	if p.ShiftStartMinutes < 0 || p.ShiftStartMinutes >= 24*60 {
		return ErrInvalidShiftWindow
	}
	if p.ShiftEndMinutes <= p.ShiftStartMinutes || p.ShiftEndMinutes > 24*60 {
		return ErrInvalidShiftWindow
	}
	if p.GraceMinutes < 0 {
		return ErrNegativeGracePeriod
	}
	if p.BreakMinutes < 0 {
		return ErrNegativeBreak
	}
	if p.RegularHoursCap <= 0 {
		return ErrInvalidRegularHoursCap
	}
	if p.WeekendShiftDays < 0 || p.WeekendShiftDays > 6 {
		return ErrInvalidWeekendShift
	}
	return p.PenaltyTable.Validate()
}
