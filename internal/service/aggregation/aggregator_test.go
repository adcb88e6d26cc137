package aggregation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/policy"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
)

func testTable() policy.PenaltyTable {
	return policy.PenaltyTable{
		{FromMinutes: 0, Amount: 0},
		{FromMinutes: 15, Amount: 50000},
		{FromMinutes: 30, Amount: 100000},
		{FromMinutes: 60, Amount: 200000},
	}
}

func rec(day int, status workhours.Status, regular, overtime string, lateMin, earlyMin int) workhours.Record {
	return workhours.Record{
		EmployeeID:        "emp-1",
		Date:              time.Date(2024, time.June, day, 0, 0, 0, 0, time.UTC),
		RegularHours:      decimal.RequireFromString(regular),
		OvertimeHours:     decimal.RequireFromString(overtime),
		LateMinutes:       lateMin,
		EarlyLeaveMinutes: earlyMin,
		Status:            status,
	}
}

func TestAggregate_SumsCountableDays(t *testing.T) {
	records := []workhours.Record{
		rec(3, workhours.StatusPresent, "8.00", "0.50", 0, 0),
		rec(4, workhours.StatusLate, "7.25", "0.00", 25, 30),
		rec(5, workhours.StatusAbsent, "0.00", "0.00", 0, 0),
		rec(6, workhours.StatusLeave, "0.00", "0.00", 0, 0),
		rec(7, workhours.StatusDayOff, "0.00", "0.00", 0, 0),
	}

	s := Aggregate("emp-1", 6, 2024, records, 2, testTable())

	assert.Equal(t, "15.75", s.TotalHours.StringFixed(2))
	assert.Equal(t, "0.50", s.OvertimeHours.StringFixed(2))
	assert.Equal(t, 25, s.LateMinutes)
	assert.Equal(t, 30, s.EarlyMinutes)
	assert.Equal(t, 2, s.LeaveDays)
	// 25 cumulative minutes fall in the [15, 30) band.
	assert.Equal(t, int64(50000), s.PenaltyAmount)
}

func TestAggregate_TwoLateDaysCrossTierBoundary(t *testing.T) {
	records := []workhours.Record{
		rec(3, workhours.StatusLate, "8.00", "0.00", 10, 0),
		rec(4, workhours.StatusLate, "8.00", "0.00", 25, 0),
	}

	s := Aggregate("emp-1", 6, 2024, records, 0, testTable())

	// 10 + 25 = 35 minutes lands in the [30, 60) band even though neither
	// day alone would.
	assert.Equal(t, 35, s.LateMinutes)
	assert.Equal(t, int64(100000), s.PenaltyAmount)
}

func TestAggregate_EmptyMonthYieldsZeroSummary(t *testing.T) {
	s := Aggregate("emp-1", 6, 2024, nil, 0, testTable())

	assert.True(t, s.TotalHours.IsZero())
	assert.True(t, s.OvertimeHours.IsZero())
	assert.Equal(t, 0, s.LateMinutes)
	assert.Equal(t, 0, s.EarlyMinutes)
	assert.Equal(t, 0, s.LeaveDays)
	assert.Equal(t, int64(0), s.PenaltyAmount)
}

func TestAggregate_TotalNeverBelowOvertime(t *testing.T) {
	records := []workhours.Record{
		rec(3, workhours.StatusPresent, "8.00", "1.25", 0, 0),
		rec(4, workhours.StatusPresent, "6.00", "0.00", 0, 0),
		rec(5, workhours.StatusLate, "8.00", "2.00", 45, 0),
	}

	s := Aggregate("emp-1", 6, 2024, records, 0, testTable())

	assert.True(t, s.TotalHours.GreaterThanOrEqual(s.OvertimeHours))
	assert.True(t, s.OvertimeHours.GreaterThanOrEqual(decimal.Zero))
	assert.Equal(t, "25.25", s.TotalHours.StringFixed(2))
	assert.Equal(t, "3.25", s.OvertimeHours.StringFixed(2))
}

func TestAggregate_LateMinutesOnlyFromLateDays(t *testing.T) {
	// A present day carrying stale late minutes must not contribute.
	records := []workhours.Record{
		rec(3, workhours.StatusPresent, "8.00", "0.00", 12, 0),
		rec(4, workhours.StatusLate, "8.00", "0.00", 20, 0),
	}

	s := Aggregate("emp-1", 6, 2024, records, 0, testTable())

	assert.Equal(t, 20, s.LateMinutes)
}

func TestAggregate_Idempotent(t *testing.T) {
	records := []workhours.Record{
		rec(3, workhours.StatusPresent, "8.00", "0.08", 0, 0),
		rec(4, workhours.StatusLate, "5.50", "0.00", 90, 15),
	}

	first := Aggregate("emp-1", 6, 2024, records, 1, testTable())
	second := Aggregate("emp-1", 6, 2024, records, 1, testTable())

	assert.Equal(t, first, second)
}

func TestAggregate_LeaveDaysVerbatim(t *testing.T) {
	// Leave status records do not drive the count; the external input does.
	records := []workhours.Record{
		rec(3, workhours.StatusLeave, "0.00", "0.00", 0, 0),
	}

	s := Aggregate("emp-1", 6, 2024, records, 4, testTable())

	assert.Equal(t, 4, s.LeaveDays)
}
