package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPolicy() WorkPolicy {
	return WorkPolicy{
		ShiftStartMinutes: 480,
		ShiftEndMinutes:   1020,
		GraceMinutes:      20,
		BreakMinutes:      60,
		RegularHoursCap:   8,
		WeekendShiftDays:  3,
		PenaltyTable: PenaltyTable{
			{FromMinutes: 0, Amount: 0},
			{FromMinutes: 15, Amount: 50000},
			{FromMinutes: 30, Amount: 100000},
			{FromMinutes: 60, Amount: 200000},
		},
	}
}

func TestWorkPolicy_ValidateAcceptsReferenceConfig(t *testing.T) {
	assert.NoError(t, validPolicy().Validate())
}

func TestWorkPolicy_ValidateFailsFast(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*WorkPolicy)
		want   error
	}{
		{"negative grace", func(p *WorkPolicy) { p.GraceMinutes = -1 }, ErrNegativeGracePeriod},
		{"negative break", func(p *WorkPolicy) { p.BreakMinutes = -30 }, ErrNegativeBreak},
		{"shift end before start", func(p *WorkPolicy) { p.ShiftEndMinutes = 240 }, ErrInvalidShiftWindow},
		{"shift start out of range", func(p *WorkPolicy) { p.ShiftStartMinutes = 1500 }, ErrInvalidShiftWindow},
		{"zero cap", func(p *WorkPolicy) { p.RegularHoursCap = 0 }, ErrInvalidRegularHoursCap},
		{"weekend shift too large", func(p *WorkPolicy) { p.WeekendShiftDays = 7 }, ErrInvalidWeekendShift},
		{"empty penalty table", func(p *WorkPolicy) { p.PenaltyTable = nil }, ErrEmptyPenaltyTable},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := validPolicy()
			c.mutate(&p)
			assert.ErrorIs(t, p.Validate(), c.want)
		})
	}
}

func TestWorkPolicy_ShiftInstants(t *testing.T) {
	p := validPolicy()
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC), p.ShiftStartOn(day))
	assert.Equal(t, time.Date(2024, time.June, 3, 17, 0, 0, 0, time.UTC), p.ShiftEndOn(day))
	assert.Equal(t, time.Date(2024, time.June, 3, 8, 20, 0, 0, time.UTC), p.LateDeadlineOn(day))
}
