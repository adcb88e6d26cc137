package leave

import (
	"context"
	"time"
)

// LeaveRepository is the read-only view of the external leave workflow's
// output.
type LeaveRepository interface {
	// IsOnLeave reports whether the employee has an approved leave day on the
	// given date.
	IsOnLeave(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// CountDays returns the number of approved leave days for the employee in
	// the given month.
	CountDays(ctx context.Context, employeeID string, month int, year int) (int, error)
}
