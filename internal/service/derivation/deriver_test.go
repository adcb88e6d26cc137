package derivation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/policy"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/timelog"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
)

func testPolicy() policy.WorkPolicy {
	return policy.WorkPolicy{
		ShiftStartMinutes: 8 * 60,  // 08:00
		ShiftEndMinutes:   17 * 60, // 17:00
		GraceMinutes:      20,
		BreakMinutes:      60,
		RegularHoursCap:   8,
		WeekendShiftDays:  3,
		PenaltyTable: policy.PenaltyTable{
			{FromMinutes: 0, Amount: 0},
			{FromMinutes: 15, Amount: 50000},
			{FromMinutes: 30, Amount: 100000},
			{FromMinutes: 60, Amount: 200000},
		},
	}
}

func day(t *testing.T) time.Time {
	t.Helper()
	// A Monday, a workday under any weekend shift.
	return time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
}

func at(d time.Time, hour, minute int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
}

func event(emp string, ts time.Time, kind timelog.Kind) timelog.Event {
	return timelog.Event{EmployeeID: emp, Timestamp: ts, Kind: kind}
}

func TestDerive_FullDayWithinGrace(t *testing.T) {
	d := day(t)
	rec, warnings := Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events: []timelog.Event{
			event("emp-1", at(d, 8, 5), timelog.KindCheckIn),
			event("emp-1", at(d, 17, 10), timelog.KindCheckOut),
		},
		IsWorkday: true,
	}, testPolicy())

	assert.Empty(t, warnings)
	assert.Equal(t, workhours.StatusPresent, rec.Status)
	// 9h05m gross minus the 60-minute break leaves 8h05m: capped regular
	// hours plus five minutes of overtime.
	assert.Equal(t, "8.00", rec.RegularHours.StringFixed(2))
	assert.Equal(t, "0.08", rec.OvertimeHours.StringFixed(2))
	assert.Equal(t, 0, rec.LateMinutes)
	assert.Equal(t, 0, rec.EarlyLeaveMinutes)
}

func TestDerive_LateCheckInWithoutCheckOut(t *testing.T) {
	d := day(t)
	rec, warnings := Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events: []timelog.Event{
			event("emp-1", at(d, 9, 25), timelog.KindCheckIn),
		},
		IsWorkday: true,
	}, testPolicy())

	assert.Empty(t, warnings)
	assert.Equal(t, workhours.StatusLate, rec.Status)
	// Lateness is measured from shift start, not from the grace limit.
	assert.Equal(t, 85, rec.LateMinutes)
	assert.Equal(t, "0.00", rec.RegularHours.StringFixed(2))
	assert.Equal(t, "0.00", rec.OvertimeHours.StringFixed(2))
	require.NotNil(t, rec.FirstCheckIn)
	assert.Nil(t, rec.LastCheckOut)
}

func TestDerive_NoEventsOnWorkday(t *testing.T) {
	d := day(t)
	rec, _ := Derive(Input{EmployeeID: "emp-1", Date: d, IsWorkday: true}, testPolicy())

	assert.Equal(t, workhours.StatusAbsent, rec.Status)
	assert.Nil(t, rec.FirstCheckIn)
	assert.Nil(t, rec.LastCheckOut)
	assert.Equal(t, "0.00", rec.RegularHours.StringFixed(2))
}

func TestDerive_NoEventsOnRestDay(t *testing.T) {
	d := day(t)
	rec, _ := Derive(Input{EmployeeID: "emp-1", Date: d, IsWorkday: false}, testPolicy())

	assert.Equal(t, workhours.StatusDayOff, rec.Status)
	assert.False(t, rec.Status.Countable())
}

func TestDerive_LeaveOverridesEverything(t *testing.T) {
	d := day(t)

	rec, _ := Derive(Input{EmployeeID: "emp-1", Date: d, IsWorkday: true, OnLeave: true}, testPolicy())
	assert.Equal(t, workhours.StatusLeave, rec.Status)

	// Even a late check-in stays classified as leave.
	rec, _ = Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events:     []timelog.Event{event("emp-1", at(d, 10, 0), timelog.KindCheckIn)},
		IsWorkday:  true,
		OnLeave:    true,
	}, testPolicy())
	assert.Equal(t, workhours.StatusLeave, rec.Status)
	assert.Equal(t, 0, rec.LateMinutes)
}

func TestDerive_RestDayCheckInFollowsNormalRules(t *testing.T) {
	d := day(t)
	rec, _ := Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events: []timelog.Event{
			event("emp-1", at(d, 8, 0), timelog.KindCheckIn),
			event("emp-1", at(d, 13, 0), timelog.KindCheckOut),
		},
		IsWorkday: false,
	}, testPolicy())

	assert.Equal(t, workhours.StatusPresent, rec.Status)
	assert.Equal(t, "4.00", rec.RegularHours.StringFixed(2))
}

func TestDerive_DuplicateEventsReduceDeterministically(t *testing.T) {
	d := day(t)
	rec, warnings := Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events: []timelog.Event{
			// Unordered arrival with duplicate kinds on both sides.
			event("emp-1", at(d, 12, 30), timelog.KindCheckOut),
			event("emp-1", at(d, 8, 45), timelog.KindCheckIn),
			event("emp-1", at(d, 8, 10), timelog.KindCheckIn),
			event("emp-1", at(d, 17, 0), timelog.KindCheckOut),
		},
		IsWorkday: true,
	}, testPolicy())

	assert.Empty(t, warnings)
	require.NotNil(t, rec.FirstCheckIn)
	require.NotNil(t, rec.LastCheckOut)
	assert.Equal(t, at(d, 8, 10), *rec.FirstCheckIn)
	assert.Equal(t, at(d, 17, 0), *rec.LastCheckOut)
	assert.Equal(t, workhours.StatusPresent, rec.Status)
}

func TestDerive_CheckOutBeforeCheckInDiscarded(t *testing.T) {
	d := day(t)
	rec, warnings := Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events: []timelog.Event{
			event("emp-1", at(d, 7, 0), timelog.KindCheckOut),
			event("emp-1", at(d, 8, 0), timelog.KindCheckIn),
		},
		IsWorkday: true,
	}, testPolicy())

	assert.Len(t, warnings, 1)
	assert.Nil(t, rec.LastCheckOut)
	assert.Equal(t, workhours.StatusPresent, rec.Status)
	assert.Equal(t, "0.00", rec.RegularHours.StringFixed(2))
}

func TestDerive_OnlyCheckOuts(t *testing.T) {
	d := day(t)
	rec, _ := Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events: []timelog.Event{
			event("emp-1", at(d, 17, 0), timelog.KindCheckOut),
		},
		IsWorkday: true,
	}, testPolicy())

	assert.Equal(t, workhours.StatusAbsent, rec.Status)
	assert.Nil(t, rec.FirstCheckIn)
	assert.Equal(t, "0.00", rec.RegularHours.StringFixed(2))
}

func TestDerive_EarlyLeaveMinutes(t *testing.T) {
	d := day(t)
	rec, _ := Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events: []timelog.Event{
			event("emp-1", at(d, 8, 0), timelog.KindCheckIn),
			event("emp-1", at(d, 16, 15), timelog.KindCheckOut),
		},
		IsWorkday: true,
	}, testPolicy())

	assert.Equal(t, workhours.StatusPresent, rec.Status)
	assert.Equal(t, 45, rec.EarlyLeaveMinutes)
}

func TestDerive_GraceBoundary(t *testing.T) {
	d := day(t)
	pol := testPolicy()

	// Exactly at the grace limit is still on time.
	rec, _ := Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events:     []timelog.Event{event("emp-1", at(d, 8, 20), timelog.KindCheckIn)},
		IsWorkday:  true,
	}, pol)
	assert.Equal(t, workhours.StatusPresent, rec.Status)

	// One minute past the limit is late, measured from shift start.
	rec, _ = Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events:     []timelog.Event{event("emp-1", at(d, 8, 21), timelog.KindCheckIn)},
		IsWorkday:  true,
	}, pol)
	assert.Equal(t, workhours.StatusLate, rec.Status)
	assert.Equal(t, 21, rec.LateMinutes)
}

func TestDerive_RoundingHalfUp(t *testing.T) {
	d := day(t)
	pol := testPolicy()
	pol.BreakMinutes = 0

	// 1h07m30s of presence is 1.125h, which must round up to 1.13.
	out := at(d, 10, 7).Add(30 * time.Second)
	rec, _ := Derive(Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events: []timelog.Event{
			event("emp-1", at(d, 9, 0), timelog.KindCheckIn),
			{EmployeeID: "emp-1", Timestamp: out, Kind: timelog.KindCheckOut},
		},
		IsWorkday: true,
	}, pol)

	assert.Equal(t, "1.13", rec.RegularHours.StringFixed(2))
}

func TestDerive_SumNeverExceedsNetElapsed(t *testing.T) {
	d := day(t)
	pol := testPolicy()
	pol.BreakMinutes = 0

	spans := []struct{ inH, inM, outH, outM int }{
		{8, 0, 12, 0},
		{8, 0, 16, 0},
		{8, 0, 17, 0},
		{7, 30, 19, 45},
	}
	for _, span := range spans {
		rec, _ := Derive(Input{
			EmployeeID: "emp-1",
			Date:       d,
			Events: []timelog.Event{
				event("emp-1", at(d, span.inH, span.inM), timelog.KindCheckIn),
				event("emp-1", at(d, span.outH, span.outM), timelog.KindCheckOut),
			},
			IsWorkday: true,
		}, pol)

		elapsed := at(d, span.outH, span.outM).Sub(at(d, span.inH, span.inM)).Hours()
		total, _ := rec.RegularHours.Add(rec.OvertimeHours).Float64()
		assert.LessOrEqual(t, total, elapsed+0.005)
		assert.LessOrEqual(t, rec.RegularHours.InexactFloat64(), 8.0)
	}
}

func TestDerive_Idempotent(t *testing.T) {
	d := day(t)
	in := Input{
		EmployeeID: "emp-1",
		Date:       d,
		Events: []timelog.Event{
			event("emp-1", at(d, 8, 31), timelog.KindCheckIn),
			event("emp-1", at(d, 18, 2), timelog.KindCheckOut),
		},
		IsWorkday: true,
	}

	first, _ := Derive(in, testPolicy())
	second, _ := Derive(in, testPolicy())
	assert.Equal(t, first, second)
}
