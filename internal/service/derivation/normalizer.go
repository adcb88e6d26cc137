package derivation

import (
	"fmt"
	"sort"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/timelog"
)

// Normalize returns the day's events ordered by timestamp ascending. The sort
// is stable so ties keep insertion order.
func Normalize(events []timelog.Event) []timelog.Event {
	ordered := make([]timelog.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})
	return ordered
}

// Reduce collapses an ordered event sequence to the day's effective check-in
// and check-out:
//
//   - the earliest check-in wins; later duplicate check-ins are no-ops
//   - the latest check-out wins; earlier duplicate check-outs are superseded
//   - a check-out that precedes the day's first check-in is invalid ordering:
//     it is discarded with a warning, never an error, so derivation always
//     completes
//
// Either pointer may be nil (missing check-in or missing check-out are
// ordinary outcomes, not failures).
func Reduce(events []timelog.Event) (firstIn *time.Time, lastOut *time.Time, warnings []string) {
	for _, ev := range events {
		switch ev.Kind {
		case timelog.KindCheckIn:
			if firstIn == nil || ev.Timestamp.Before(*firstIn) {
				ts := ev.Timestamp
				firstIn = &ts
			}
		case timelog.KindCheckOut:
			if lastOut == nil || ev.Timestamp.After(*lastOut) {
				ts := ev.Timestamp
				lastOut = &ts
			}
		}
	}

	if firstIn != nil && lastOut != nil && lastOut.Before(*firstIn) {
		warnings = append(warnings, fmt.Sprintf(
			"check-out %s precedes first check-in %s; check-out discarded",
			lastOut.Format(time.RFC3339), firstIn.Format(time.RFC3339),
		))
		lastOut = nil
	}

	return firstIn, lastOut, warnings
}
