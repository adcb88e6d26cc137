package summary

import "errors"

// Summary domain errors
var (
	ErrSummaryNotFound  = errors.New("attendance summary not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)
