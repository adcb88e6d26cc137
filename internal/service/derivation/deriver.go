package derivation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/policy"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/timelog"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
)

var secondsPerHour = decimal.NewFromInt(3600)

// Input is everything one daily derivation depends on. The deriver is a pure
// function of this value plus the work policy: same input, bit-identical
// record.
type Input struct {
	EmployeeID string
	Date       time.Time
	Events     []timelog.Event
	IsWorkday  bool
	OnLeave    bool
}

// Derive turns one employee-day's raw events into a work-hours record.
//
// Hours: gross presence is last check-out minus first check-in (zero when
// either is missing). The policy's unpaid break is deducted before the split;
// regular hours are capped and the excess is overtime. Intermediate math runs
// at full decimal precision and only the stored values are rounded to two
// decimals, half-up.
//
// Status precedence: leave flag, then non-working day, then missing check-in,
// then the grace-period lateness test.
func Derive(in Input, pol policy.WorkPolicy) (workhours.Record, []string) {
	ordered := Normalize(in.Events)
	firstIn, lastOut, warnings := Reduce(ordered)

	regular, overtime := splitHours(firstIn, lastOut, pol)

	rec := workhours.Record{
		EmployeeID:    in.EmployeeID,
		Date:          in.Date,
		FirstCheckIn:  firstIn,
		LastCheckOut:  lastOut,
		RegularHours:  regular,
		OvertimeHours: overtime,
	}

	switch {
	case in.OnLeave:
		rec.Status = workhours.StatusLeave
	case !in.IsWorkday && firstIn == nil:
		rec.Status = workhours.StatusDayOff
	case firstIn == nil:
		rec.Status = workhours.StatusAbsent
	case firstIn.After(pol.LateDeadlineOn(in.Date)):
		rec.Status = workhours.StatusLate
		rec.LateMinutes = wholeMinutes(firstIn.Sub(pol.ShiftStartOn(in.Date)))
	default:
		rec.Status = workhours.StatusPresent
	}

	if rec.Status.Countable() && lastOut != nil {
		if shiftEnd := pol.ShiftEndOn(in.Date); lastOut.Before(shiftEnd) {
			rec.EarlyLeaveMinutes = wholeMinutes(shiftEnd.Sub(*lastOut))
		}
	}

	return rec, warnings
}

// splitHours computes the rounded regular/overtime pair from the effective
// check-in and check-out.
func splitHours(firstIn, lastOut *time.Time, pol policy.WorkPolicy) (decimal.Decimal, decimal.Decimal) {
	zero := decimal.Zero.Round(2)
	if firstIn == nil || lastOut == nil {
		return zero, zero
	}

	gross := lastOut.Sub(*firstIn)
	net := gross - time.Duration(pol.BreakMinutes)*time.Minute
	if net <= 0 {
		return zero, zero
	}

	netHours := decimal.NewFromInt(int64(net / time.Second)).Div(secondsPerHour)
	capHours := decimal.NewFromInt(int64(pol.RegularHoursCap))

	regular := decimal.Min(capHours, netHours)
	overtime := decimal.Max(decimal.Zero, netHours.Sub(capHours))

	return regular.Round(2), overtime.Round(2)
}

func wholeMinutes(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
