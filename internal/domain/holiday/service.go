package holiday

import (
	"context"
)

// HolidayService manages the designated holiday calendar.
type HolidayService interface {
	// Create registers a holiday.
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// Delete removes a holiday by ID.
	Delete(ctx context.Context, id string) error

	// ListYear returns all holidays in the calendar year.
	ListYear(ctx context.Context, year int) ([]HolidayResponse, error)
}
