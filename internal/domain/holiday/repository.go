package holiday

import (
	"context"
	"time"
)

// HolidayRepository stores the designated holiday calendar.
type HolidayRepository interface {
	// Create stores a holiday; ErrHolidayExists when the date is taken.
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// Delete removes a holiday by ID; ErrHolidayNotFound when absent.
	Delete(ctx context.Context, id string) error

	// ListBetween returns holidays in [from, to] ordered by date.
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
