package summary

import (
	"context"
)

// SummaryRepository defines data access for monthly attendance summaries.
type SummaryRepository interface {
	// Upsert inserts the summary or replaces the existing row for the same
	// (employee_id, month, year) key.
	Upsert(ctx context.Context, s Summary) (Summary, error)

	// GetByEmployeeAndMonth returns one summary or ErrSummaryNotFound.
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month int, year int) (Summary, error)

	// ListByMonth returns all summaries for the month, ordered by employee.
	ListByMonth(ctx context.Context, month int, year int) ([]Summary, error)
}
