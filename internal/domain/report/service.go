package report

import (
	"context"
)

// ReportService renders stored summaries and records for display/export.
type ReportService interface {
	// MonthlyAttendance builds the month's attendance report across all
	// active employees.
	MonthlyAttendance(ctx context.Context, req MonthlyAttendanceReportRequest) (MonthlyAttendanceReport, error)
}
