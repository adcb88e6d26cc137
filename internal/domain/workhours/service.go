package workhours

import (
	"context"
	"time"
)

// DerivationService turns raw time log events into work-hours records.
type DerivationService interface {
	// DeriveDay (re-)derives the record for one employee-day and replaces any
	// prior record for that key.
	DeriveDay(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// DeriveDate derives records for every active employee on the date.
	DeriveDate(ctx context.Context, date time.Time) ([]Record, error)

	// GetRecord returns one employee-day record.
	GetRecord(ctx context.Context, employeeID string, date time.Time) (RecordResponse, error)

	// ListRecords returns records matching the filter.
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)
}
