package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/policy"
)

func workConfigFixture() WorkConfig {
	return WorkConfig{
		ShiftStart:       "08:00",
		ShiftEnd:         "17:00",
		GraceMinutes:     20,
		BreakMinutes:     60,
		RegularHoursCap:  8,
		WeekendShiftDays: 3,
		PenaltyTiers:     "0:0,15:50000,30:100000,60:200000",
	}
}

func TestWorkPolicy_BuildsFromConfig(t *testing.T) {
	cfg := &Config{Work: workConfigFixture()}

	pol, err := cfg.WorkPolicy()
	require.NoError(t, err)

	assert.Equal(t, 8*60, pol.ShiftStartMinutes)
	assert.Equal(t, 17*60, pol.ShiftEndMinutes)
	assert.Equal(t, 20, pol.GraceMinutes)
	assert.Equal(t, 60, pol.BreakMinutes)
	assert.Equal(t, 8, pol.RegularHoursCap)
	assert.Equal(t, 3, pol.WeekendShiftDays)
	assert.Len(t, pol.PenaltyTable, 4)
}

func TestWorkPolicy_RejectsBadClockTimes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"not a time", "morning", "17:00"},
		{"missing minutes", "08", "17:00"},
		{"hour out of range", "25:00", "17:00"},
		{"end not a time", "08:00", "5pm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work := workConfigFixture()
			work.ShiftStart = tt.start
			work.ShiftEnd = tt.end
			cfg := &Config{Work: work}

			_, err := cfg.WorkPolicy()
			assert.Error(t, err)
		})
	}
}

func TestWorkPolicy_RejectsInvertedShift(t *testing.T) {
	work := workConfigFixture()
	work.ShiftStart = "17:00"
	work.ShiftEnd = "08:00"
	cfg := &Config{Work: work}

	_, err := cfg.WorkPolicy()
	assert.ErrorIs(t, err, policy.ErrInvalidShiftWindow)
}

func TestParsePenaltyTiers(t *testing.T) {
	table, err := parsePenaltyTiers("0:0,15:50000,30:100000,60:200000")
	require.NoError(t, err)
	require.Len(t, table, 4)

	assert.Equal(t, policy.PenaltyTier{FromMinutes: 0, Amount: 0}, table[0])
	assert.Equal(t, policy.PenaltyTier{FromMinutes: 60, Amount: 200000}, table[3])
}

func TestParsePenaltyTiers_TrimsSpaces(t *testing.T) {
	table, err := parsePenaltyTiers("0:0, 15:50000")
	require.NoError(t, err)
	assert.Equal(t, 15, table[1].FromMinutes)
}

func TestParsePenaltyTiers_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"missing amount", "0:0,15"},
		{"non numeric bound", "zero:0"},
		{"non numeric amount", "0:free"},
		{"extra separator", "0:0:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePenaltyTiers(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestWorkPolicy_RejectsUnorderedTiers(t *testing.T) {
	work := workConfigFixture()
	work.PenaltyTiers = "0:0,30:100000,15:50000"
	cfg := &Config{Work: work}

	_, err := cfg.WorkPolicy()
	assert.Error(t, err)
}
