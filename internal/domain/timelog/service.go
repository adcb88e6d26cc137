package timelog

import (
	"context"
)

// EventService accepts recognition and manual events and exposes the raw log.
type EventService interface {
	// IngestDeviceEvent stores an event posted by a recognition terminal and
	// schedules re-derivation of the affected day.
	IngestDeviceEvent(ctx context.Context, req IngestEventRequest) (EventResponse, error)

	// CreateManualEvent stores an administrator-entered event.
	CreateManualEvent(ctx context.Context, req ManualEventRequest) (EventResponse, error)

	// ListEvents returns events matching the filter.
	ListEvents(ctx context.Context, filter EventFilter) (ListEventsResponse, error)
}
