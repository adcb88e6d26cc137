package timelog

import (
	"context"
	"time"
)

// EventRepository defines data access for raw time log events. Events are
// append-only; derivation reads a closed per-day set and never mutates it.
type EventRepository interface {
	// Create stores a new event.
	Create(ctx context.Context, event Event) (Event, error)

	// ListByEmployeeAndDay returns all events for one employee whose
	// timestamps fall on the given calendar day, ordered by timestamp
	// ascending with insertion order as the tiebreak.
	ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]Event, error)

	// List returns events matching the filter with pagination.
	List(ctx context.Context, filter EventFilter) ([]Event, int64, error)
}
