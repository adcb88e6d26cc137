package workhours

import (
	"context"
	"time"
)

// RecordRepository defines data access for derived work-hours records. Records
// are replaced wholesale on re-derivation; there is no partial update.
type RecordRepository interface {
	// Upsert inserts the record or replaces the existing row for the same
	// (employee_id, date) key.
	Upsert(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate returns the record for one employee-day, or
	// ErrRecordNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// ListByEmployeeAndMonth returns all records for one employee in the
	// given month, ordered by date ascending.
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, month int, year int) ([]Record, error)

	// List returns records matching the filter with pagination.
	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)
}
