package derivation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/timelog"
)

func TestNormalize_SortsByTimestamp(t *testing.T) {
	d := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	events := []timelog.Event{
		event("emp-1", at(d, 17, 0), timelog.KindCheckOut),
		event("emp-1", at(d, 8, 0), timelog.KindCheckIn),
		event("emp-1", at(d, 12, 0), timelog.KindCheckOut),
	}

	ordered := Normalize(events)

	require.Len(t, ordered, 3)
	assert.Equal(t, at(d, 8, 0), ordered[0].Timestamp)
	assert.Equal(t, at(d, 12, 0), ordered[1].Timestamp)
	assert.Equal(t, at(d, 17, 0), ordered[2].Timestamp)

	// Input slice is left untouched.
	assert.Equal(t, at(d, 17, 0), events[0].Timestamp)
}

func TestNormalize_StableOnEqualTimestamps(t *testing.T) {
	d := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	a := timelog.Event{ID: "a", EmployeeID: "emp-1", Timestamp: at(d, 9, 0), Kind: timelog.KindCheckIn}
	b := timelog.Event{ID: "b", EmployeeID: "emp-1", Timestamp: at(d, 9, 0), Kind: timelog.KindCheckOut}

	ordered := Normalize([]timelog.Event{a, b})

	// Ties keep insertion order.
	assert.Equal(t, "a", ordered[0].ID)
	assert.Equal(t, "b", ordered[1].ID)
}

func TestReduce_EarliestInLatestOutWin(t *testing.T) {
	d := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	firstIn, lastOut, warnings := Reduce([]timelog.Event{
		event("emp-1", at(d, 8, 10), timelog.KindCheckIn),
		event("emp-1", at(d, 8, 45), timelog.KindCheckIn),
		event("emp-1", at(d, 12, 30), timelog.KindCheckOut),
		event("emp-1", at(d, 17, 5), timelog.KindCheckOut),
	})

	assert.Empty(t, warnings)
	require.NotNil(t, firstIn)
	require.NotNil(t, lastOut)
	assert.Equal(t, at(d, 8, 10), *firstIn)
	assert.Equal(t, at(d, 17, 5), *lastOut)
}

func TestReduce_Empty(t *testing.T) {
	firstIn, lastOut, warnings := Reduce(nil)
	assert.Nil(t, firstIn)
	assert.Nil(t, lastOut)
	assert.Empty(t, warnings)
}

func TestReduce_InvertedOrderDiscardsCheckOut(t *testing.T) {
	d := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	firstIn, lastOut, warnings := Reduce([]timelog.Event{
		event("emp-1", at(d, 7, 30), timelog.KindCheckOut),
		event("emp-1", at(d, 9, 0), timelog.KindCheckIn),
	})

	require.NotNil(t, firstIn)
	assert.Nil(t, lastOut)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "discarded")
}

func TestReduce_OnlyCheckOuts(t *testing.T) {
	d := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	firstIn, lastOut, warnings := Reduce([]timelog.Event{
		event("emp-1", at(d, 16, 0), timelog.KindCheckOut),
		event("emp-1", at(d, 17, 0), timelog.KindCheckOut),
	})

	assert.Nil(t, firstIn)
	require.NotNil(t, lastOut)
	assert.Equal(t, at(d, 17, 0), *lastOut)
	assert.Empty(t, warnings)
}
