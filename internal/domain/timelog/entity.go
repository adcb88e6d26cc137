package timelog

import (
	"time"
)

// Kind distinguishes the two event directions.
type Kind string

const (
	KindCheckIn  Kind = "check_in"
	KindCheckOut Kind = "check_out"
)

// Source records how the event entered the system.
type Source string

const (
	SourceDevice Source = "device"
	SourceManual Source = "manual"
)

// Event is one immutable check-in/check-out fact for an employee. Events are
// produced by the recognition terminals (which emit an already-matched
// employee ID plus a timestamp) or by manual entry; they are never mutated.
// An event belongs to the calendar day of its own timestamp.
type Event struct {
	ID         string
	EmployeeID string
	Timestamp  time.Time
	Kind       Kind
	Source     Source
	DeviceID   *string
	// Confidence is the face-match score reported by the terminal, when the
	// event came from one. Informational only.
	Confidence *float64
	CreatedAt  time.Time
}

// ValidKind reports whether s is a known event kind.
func ValidKind(s string) bool {
	return s == string(KindCheckIn) || s == string(KindCheckOut)
}
