package leave

import "time"

// Day is an approved leave day for an employee. Leave approval is owned by a
// separate workflow; this service reads the result as a per-day flag and a
// per-month count.
type Day struct {
	EmployeeID string
	Date       time.Time
}
