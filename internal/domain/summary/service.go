package summary

import (
	"context"
)

// AggregationService folds monthly work-hours records into attendance
// summaries.
type AggregationService interface {
	// AggregateEmployee (re-)aggregates one employee's month, replacing any
	// prior summary wholesale.
	AggregateEmployee(ctx context.Context, employeeID string, month int, year int) (Summary, error)

	// AggregateMonth aggregates every active employee for the month.
	AggregateMonth(ctx context.Context, month int, year int) ([]Summary, error)

	// ListSummaries returns the month's stored summaries.
	ListSummaries(ctx context.Context, month int, year int) (ListSummariesResponse, error)
}
